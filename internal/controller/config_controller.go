package controller

import (
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/pkg/serverutils"
	"meeting-minutes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConfigController interface {
	RegisterRoutes(r fiber.Router)
	GetModelConfig(ctx *fiber.Ctx) error
	SaveModelConfig(ctx *fiber.Ctx) error
	SaveApiKey(ctx *fiber.Ctx) error
	GetTranscriptConfig(ctx *fiber.Ctx) error
	SaveTranscriptConfig(ctx *fiber.Ctx) error
}

type configController struct {
	service service.IConfigService
}

func NewConfigController(service service.IConfigService) IConfigController {
	return &configController{service: service}
}

func (c *configController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/config/v1")
	h.Get("/model", c.GetModelConfig)
	h.Post("/model", c.SaveModelConfig)
	h.Post("/api-key", c.SaveApiKey)
	h.Get("/transcript", c.GetTranscriptConfig)
	h.Post("/transcript", c.SaveTranscriptConfig)
}

func (c *configController) GetModelConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetModelConfig(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Model config", res))
}

func (c *configController) SaveModelConfig(ctx *fiber.Ctx) error {
	var req dto.SaveModelConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.SaveModelConfig(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Model config saved", nil))
}

func (c *configController) SaveApiKey(ctx *fiber.Ctx) error {
	var req dto.SaveApiKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.SaveApiKey(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("API key saved", nil))
}

func (c *configController) GetTranscriptConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetTranscriptConfig(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "No transcript config set"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Transcript config", res))
}

func (c *configController) SaveTranscriptConfig(ctx *fiber.Ctx) error {
	var req dto.SaveTranscriptConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.SaveTranscriptConfig(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Transcript config saved", nil))
}
