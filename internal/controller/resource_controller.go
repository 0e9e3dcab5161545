package controller

import (
	"errors"

	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/pkg/serverutils"
	"ai-chatdesk-be/internal/service"
	"ai-chatdesk-be/pkg/resource"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	Fetch(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
}

type resourceController struct {
	service service.IResourceService
}

func NewResourceController(service service.IResourceService) IResourceController {
	return &resourceController{service: service}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resource")
	h.Get("/fetch", c.Fetch)
	h.Post("/open", c.Open)
}

// Fetch streams the bytes behind a resource id. Missing or unreadable
// targets answer 404; the UI shows a dead preview, nothing more.
func (c *resourceController) Fetch(ctx *fiber.Ctx) error {
	resourceId := ctx.Query("id")
	if resourceId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing resource id"))
	}

	data, contentType, err := c.service.Fetch(ctx.Context(), resourceId)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Resource not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(data)
}

func (c *resourceController) Open(ctx *fiber.Ctx) error {
	var req dto.OpenResourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.Open(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Opened externally", nil))
}
