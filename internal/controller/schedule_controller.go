package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/serverutils"
	"github.com/martinsuhendra/manta-sub002/internal/service"
)

type IScheduleController interface {
	RegisterRoutes(r fiber.Router)
	CreateTemplate(ctx *fiber.Ctx) error
	ListTemplates(ctx *fiber.Ctx) error
	DeleteTemplate(ctx *fiber.Ctx) error
	GenerateSessions(ctx *fiber.Ctx) error
}

type scheduleController struct {
	scheduleService service.IScheduleService
}

func NewScheduleController(scheduleService service.IScheduleService) IScheduleController {
	return &scheduleController{
		scheduleService: scheduleService,
	}
}

func (c *scheduleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/schedule/templates")
	h.Use(serverutils.RequireRoles("ADMIN"))
	h.Post("", c.CreateTemplate)
	h.Get("", c.ListTemplates)
	h.Delete(":id", c.DeleteTemplate)
	h.Post("generate", c.GenerateSessions)
}

func (c *scheduleController) CreateTemplate(ctx *fiber.Ctx) error {
	var req dto.SessionTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scheduleService.CreateTemplate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create template", res))
}

func (c *scheduleController) ListTemplates(ctx *fiber.Ctx) error {
	res, err := c.scheduleService.GetTemplates(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching templates", res))
}

func (c *scheduleController) DeleteTemplate(ctx *fiber.Ctx) error {
	if err := c.scheduleService.DeleteTemplate(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete template", nil))
}

func (c *scheduleController) GenerateSessions(ctx *fiber.Ctx) error {
	var req dto.GenerateSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scheduleService.GenerateSessions(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success generate sessions", res))
}
