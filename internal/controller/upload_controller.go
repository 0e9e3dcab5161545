package controller

import (
	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/pkg/serverutils"
	"ai-chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	GetDocumentIndex(ctx *fiber.Ctx) error
	GetFilters(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Post("/", c.Upload)
	h.Get("/documents", c.GetDocumentIndex)
	h.Get("/filters", c.GetFilters)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Upload(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Upload processed", res))
}

func (c *uploadController) GetDocumentIndex(ctx *fiber.Ctx) error {
	res, err := c.service.GetDocumentIndex(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Indexed documents", res))
}

func (c *uploadController) GetFilters(ctx *fiber.Ctx) error {
	res, err := c.service.GetFilters(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Upload filters", res))
}
