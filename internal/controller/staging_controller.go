package controller

import (
	"errors"
	"io"
	"strconv"

	"ai-chatdesk-be/internal/dto"
	"ai-chatdesk-be/internal/pkg/serverutils"
	"ai-chatdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStagingController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Stage(ctx *fiber.Ctx) error
	StageRecording(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type stagingController struct {
	service service.IStagingService
}

func NewStagingController(service service.IStagingService) IStagingController {
	return &stagingController{service: service}
}

func (c *stagingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/staging")
	h.Get("/", c.Get)
	h.Post("/files", c.Stage)
	h.Post("/recording", c.StageRecording)
	h.Delete("/:index", c.Remove)
	h.Delete("/", c.Clear)
}

func (c *stagingController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Staged attachments", res))
}

func (c *stagingController) Stage(ctx *fiber.Ctx) error {
	var req dto.StageFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Stage(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Files staged", res))
}

// StageRecording accepts a multipart "file" part holding captured audio.
func (c *stagingController) StageRecording(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Audio file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Cannot read audio file"))
	}
	defer file.Close()

	// Zero-length captures are accepted as-is; judging the payload is
	// the knowledge backend's job.
	payload, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	res, err := c.service.StageRecording(ctx.Context(), fileHeader.Filename, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recording staged", res))
}

func (c *stagingController) Remove(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid index"))
	}

	res, err := c.service.Remove(ctx.Context(), index)
	if err != nil {
		if errors.Is(err, service.ErrStagedItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Attachment removed", res))
}

func (c *stagingController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.Clear(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Staging cleared", nil))
}
