package controller

import (
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/pkg/serverutils"
	"meeting-minutes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	ProcessTranscript(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
}

type summaryController struct {
	service service.ISummaryService
}

func NewSummaryController(service service.ISummaryService) ISummaryController {
	return &summaryController{service: service}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Post("/process", c.ProcessTranscript)
	h.Get("/:meeting_id", c.GetSummary)
}

func (c *summaryController) ProcessTranscript(ctx *fiber.Ctx) error {
	var req dto.ProcessTranscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	res, err := c.service.Process(ctx.Context(), &req)
	if err != nil {
		// Config problems are the caller's to fix; everything else is ours
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Summary processing started", res))
}

func (c *summaryController) GetSummary(ctx *fiber.Ctx) error {
	meetingId := ctx.Params("meeting_id")

	res, err := c.service.GetSummary(ctx.Context(), meetingId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "No summary process found for this meeting"))
	}

	// The status code tracks the job: 202 while the worker still owns
	// it, 400 for a failed verdict, 200 only for a completed summary.
	switch entity.JobStatus(res.Status) {
	case entity.JobStatusPending, entity.JobStatusProcessing:
		return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Summary processing in progress", res))
	case entity.JobStatusFailed:
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ApiResponse[*dto.SummaryStatusResponse]{
			Success: false,
			Message: "Summary processing failed",
			Data:    res,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Summary completed", res))
}
