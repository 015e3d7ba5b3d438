package handlers

import (
	"errors"
	"strconv"

	"github.com/campuslink/exchange-backend/internal/dto"
	"github.com/campuslink/exchange-backend/internal/middleware"
	"github.com/campuslink/exchange-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type QnaHandler struct {
	qna *services.QnaService
}

func NewQnaHandler(qna *services.QnaService) *QnaHandler {
	return &QnaHandler{qna: qna}
}

func (h *QnaHandler) CreateQuestion(c *fiber.Ctx) error {
	authorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	question, err := h.qna.CreateQuestion(authorID, req.Title, req.Body)
	if err != nil {
		return contentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewQuestionResponse(question))
}

func (h *QnaHandler) CreateReply(c *fiber.Ctx) error {
	authorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid question ID",
		})
	}

	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	reply, err := h.qna.CreateReply(questionID, authorID, req.Body)
	if err != nil {
		return contentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewQuestionReplyResponse(reply))
}

func (h *QnaHandler) ListQuestions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit > 100 {
		limit = 100
	}

	questions, total, err := h.qna.ListQuestions(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch questions",
		})
	}

	items := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		items[i] = dto.NewQuestionResponse(&questions[i])
	}

	return c.JSON(fiber.Map{
		"questions": items,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (h *QnaHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid question ID",
		})
	}

	question, replies, err := h.qna.GetQuestion(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Question not found",
		})
	}

	replyItems := make([]dto.ReplyResponse, len(replies))
	for i := range replies {
		replyItems[i] = dto.NewQuestionReplyResponse(&replies[i])
	}

	return c.JSON(fiber.Map{
		"question": dto.NewQuestionResponse(question),
		"replies":  replyItems,
	})
}

func contentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAuthorBanned):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
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
		Error: true, Message: "Request failed",
	})
}
