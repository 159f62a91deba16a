package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/serverutils"
	"github.com/martinsuhendra/manta-sub002/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboardStats(ctx *fiber.Ctx) error
	GetMembers(ctx *fiber.Ctx) error
	GetMemberDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.RequireRoles("ADMIN"))
	h.Get("dashboard/stats", c.GetDashboardStats)
	h.Get("members", c.GetMembers)
	h.Get("members/:id", c.GetMemberDetail)
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching dashboard stats", res))
}

func (c *adminController) GetMembers(ctx *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.adminService.GetMembers(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching members", res))
}

func (c *adminController) GetMemberDetail(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid member id")
	}

	res, err := c.adminService.GetMemberDetail(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching member detail", res))
}
