package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/serverutils"
	"github.com/martinsuhendra/manta-sub002/internal/service"
)

type IFreezeController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	AdminList(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Sweep(ctx *fiber.Ctx) error
}

type freezeController struct {
	freezeService service.IFreezeService
	adminService  service.IAdminService
}

func NewFreezeController(freezeService service.IFreezeService, adminService service.IAdminService) IFreezeController {
	return &freezeController{
		freezeService: freezeService,
		adminService:  adminService,
	}
}

func (c *freezeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/freeze-requests/v1")
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Get("", serverutils.JwtMiddleware, c.List)

	admin := r.Group("/admin/freeze-requests")
	admin.Use(serverutils.RequireRoles("ADMIN"))
	admin.Get("", c.AdminList)
	admin.Put(":id/approve", c.Approve)
	admin.Put(":id/reject", c.Reject)
	// Invoked by a trusted periodic caller to finish elapsed freezes.
	admin.Post("sweep", c.Sweep)
}

func (c *freezeController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateFreezeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freezeService.CreateRequest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create freeze request", res))
}

func (c *freezeController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.freezeService.MyRequests(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching freeze requests", res))
}

func (c *freezeController) AdminList(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetFreezeRequests(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching freeze requests", res))
}

func (c *freezeController) Approve(ctx *fiber.Ctx) error {
	approverId := currentUserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	var req dto.ApproveFreezeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freezeService.Approve(ctx.Context(), approverId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success approve freeze request", res))
}

func (c *freezeController) Reject(ctx *fiber.Ctx) error {
	approverId := currentUserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request id")
	}

	var req dto.RejectFreezeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.freezeService.Reject(ctx.Context(), approverId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reject freeze request", res))
}

func (c *freezeController) Sweep(ctx *fiber.Ctx) error {
	res, err := c.freezeService.Sweep(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success run reactivation sweep", res))
}
