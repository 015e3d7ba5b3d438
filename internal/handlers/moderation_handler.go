package handlers

import (
	"errors"
	"strconv"

	"github.com/campuslink/exchange-backend/internal/dto"
	"github.com/campuslink/exchange-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ModerationHandler exposes the administrator moderation panel.
type ModerationHandler struct {
	moderation *services.ModerationService
	reports    *services.ReportService
}

func NewModerationHandler(moderation *services.ModerationService, reports *services.ReportService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation, reports: reports}
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.reports.ListReports(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ModerationHandler) SetUserStatus(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.SetUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.moderation.SetUserStatus(userID, req.Status, req.BanDays); err != nil {
		return h.moderationError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User status updated"})
}

func (h *ModerationHandler) BlindUserContent(c *fiber.Ctx) error {
	return h.cascade(c, h.moderation.BlindAllUserContent, "Content hidden")
}

func (h *ModerationHandler) UnblindUserContent(c *fiber.Ctx) error {
	return h.cascade(c, h.moderation.UnblindAllUserContent, "Content restored")
}

func (h *ModerationHandler) ResetReportCount(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.moderation.ResetReportCount(userID); err != nil {
		return h.moderationError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Report count reset"})
}

func (h *ModerationHandler) cascade(c *fiber.Ctx, op func(uuid.UUID) (services.CascadeResult, error), message string) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	result, err := op(userID)
	if err != nil {
		return h.moderationError(c, err)
	}

	return c.JSON(dto.CascadeResponse{
		Message:     message,
		Updated:     result.Updated,
		FailedKinds: result.FailedKinds(),
	})
}

func (h *ModerationHandler) moderationError(c *fiber.Ctx, err error) error {
	switch {
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
		Error: true, Message: "Moderation action failed",
	})
}
