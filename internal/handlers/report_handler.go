package handlers

import (
	"errors"

	"github.com/campuslink/exchange-backend/internal/dto"
	"github.com/campuslink/exchange-backend/internal/middleware"
	"github.com/campuslink/exchange-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	sanctions *services.SanctionService
}

func NewReportHandler(sanctions *services.SanctionService) *ReportHandler {
	return &ReportHandler{sanctions: sanctions}
}

// Create files a report against another user. The reporter is the
// authenticated caller; escalation happens behind the scenes and is not
// reflected in the response.
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	reporterID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.FileReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.ReportedID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "reported_id is required",
		})
	}

	outcome, err := h.sanctions.ProcessReport(
		req.ReportedID, reporterID,
		req.Reason, req.Category, req.Title, req.DetailedReason,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateReport):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to file report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FileReportResponse{
		Message:             outcome.Message,
		NextAllowedReportAt: outcome.NextAllowedReportAt,
	})
}
