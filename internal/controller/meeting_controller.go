package controller

import (
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/pkg/serverutils"
	"meeting-minutes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMeetingController interface {
	RegisterRoutes(r fiber.Router)
	SaveTranscript(ctx *fiber.Ctx) error
	GetMeetings(ctx *fiber.Ctx) error
	GetMeeting(ctx *fiber.Ctx) error
	UpdateTitle(ctx *fiber.Ctx) error
	DeleteMeeting(ctx *fiber.Ctx) error
}

type meetingController struct {
	service service.IMeetingService
}

func NewMeetingController(service service.IMeetingService) IMeetingController {
	return &meetingController{service: service}
}

func (c *meetingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meeting/v1")
	h.Post("/transcript", c.SaveTranscript)
	h.Get("/", c.GetMeetings)
	h.Get("/:meeting_id", c.GetMeeting)
	h.Put("/:meeting_id/title", c.UpdateTitle)
	h.Delete("/:meeting_id", c.DeleteMeeting)
}

func (c *meetingController) SaveTranscript(ctx *fiber.Ctx) error {
	var req dto.SaveTranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.SaveTranscript(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Transcript saved", nil))
}

func (c *meetingController) GetMeetings(ctx *fiber.Ctx) error {
	meetings, err := c.service.GetMeetings(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Meetings", meetings))
}

func (c *meetingController) GetMeeting(ctx *fiber.Ctx) error {
	meetingId := ctx.Params("meeting_id")

	res, err := c.service.GetMeeting(ctx.Context(), meetingId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Meeting not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Meeting detail", res))
}

func (c *meetingController) UpdateTitle(ctx *fiber.Ctx) error {
	meetingId := ctx.Params("meeting_id")

	var req dto.UpdateMeetingTitleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	if err := c.service.UpdateTitle(ctx.Context(), meetingId, &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Meeting title updated", nil))
}

func (c *meetingController) DeleteMeeting(ctx *fiber.Ctx) error {
	meetingId := ctx.Params("meeting_id")

	if err := c.service.DeleteMeeting(ctx.Context(), meetingId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Meeting deleted", nil))
}
