package handlers

import (
	"strconv"

	"github.com/campuslink/exchange-backend/internal/dto"
	"github.com/campuslink/exchange-backend/internal/middleware"
	"github.com/campuslink/exchange-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	authorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	review, err := h.reviews.CreateReview(authorID, req.University, req.Title, req.Body, req.Rating)
	if err != nil {
		return contentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewReviewResponse(review))
}

func (h *ReviewHandler) CreateReply(c *fiber.Ctx) error {
	authorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	reply, err := h.reviews.CreateReply(reviewID, authorID, req.Body)
	if err != nil {
		return contentError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewReviewReplyResponse(reply))
}

func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	university := c.Query("university", "")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit > 100 {
		limit = 100
	}

	reviews, total, err := h.reviews.ListReviews(university, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reviews",
		})
	}

	items := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		items[i] = dto.NewReviewResponse(&reviews[i])
	}

	return c.JSON(fiber.Map{
		"reviews": items,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	review, replies, err := h.reviews.GetReview(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Review not found",
		})
	}

	replyItems := make([]dto.ReplyResponse, len(replies))
	for i := range replies {
		replyItems[i] = dto.NewReviewReplyResponse(&replies[i])
	}

	return c.JSON(fiber.Map{
		"review":  dto.NewReviewResponse(review),
		"replies": replyItems,
	})
}
