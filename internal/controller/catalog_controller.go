package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/serverutils"
	"github.com/martinsuhendra/manta-sub002/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListProducts(ctx *fiber.Ctx) error
	ShowProduct(ctx *fiber.Ctx) error
	CreateProduct(ctx *fiber.Ctx) error
	ListClasses(ctx *fiber.Ctx) error
	CreateClass(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("products", c.ListProducts)
	h.Get("products/:id", c.ShowProduct)
	h.Get("classes", c.ListClasses)
	h.Get("sessions", c.ListSessions)

	admin := r.Group("/admin/catalog")
	admin.Use(serverutils.RequireRoles("ADMIN"))
	admin.Post("products", c.CreateProduct)
	admin.Post("classes", c.CreateClass)
	admin.Post("sessions", c.CreateSession)
}

func (c *catalogController) ListProducts(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetProducts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching products", res))
}

func (c *catalogController) ShowProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	res, err := c.catalogService.GetProduct(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching product", res))
}

func (c *catalogController) CreateProduct(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *catalogController) ListClasses(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetClassItems(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching classes", res))
}

func (c *catalogController) CreateClass(ctx *fiber.Ctx) error {
	var req dto.CreateClassItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateClassItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create class", res))
}

// ListSessions defaults to the coming 7 days when no range is given.
func (c *catalogController) ListSessions(ctx *fiber.Ctx) error {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)

	if q := ctx.Query("from"); q != "" {
		parsed, err := time.Parse(time.DateOnly, q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = parsed
	}
	if q := ctx.Query("to"); q != "" {
		parsed, err := time.Parse(time.DateOnly, q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		to = parsed
	}

	res, err := c.catalogService.GetSessions(ctx.Context(), from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching sessions", res))
}

func (c *catalogController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateClassSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}
