package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/serverutils"
	"github.com/martinsuhendra/manta-sub002/internal/service"
)

type IMembershipController interface {
	RegisterRoutes(r fiber.Router)
	Purchase(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	QuotaUsage(ctx *fiber.Ctx) error
}

type membershipController struct {
	membershipService service.IMembershipService
}

func NewMembershipController(membershipService service.IMembershipService) IMembershipController {
	return &membershipController{
		membershipService: membershipService,
	}
}

func (c *membershipController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/membership/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("purchase", c.Purchase)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/quota", c.QuotaUsage)
}

func (c *membershipController) Purchase(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.PurchaseMembershipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.membershipService.Purchase(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success purchase membership", res))
}

func (c *membershipController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.membershipService.MyMemberships(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching memberships", res))
}

func (c *membershipController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid membership id")
	}

	res, err := c.membershipService.GetMembership(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching membership", res))
}

func (c *membershipController) QuotaUsage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid membership id")
	}

	res, err := c.membershipService.GetQuotaUsage(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching quota usage", res))
}
