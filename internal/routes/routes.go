package routes

import (
	"time"

	"github.com/campuslink/exchange-backend/internal/config"
	"github.com/campuslink/exchange-backend/internal/handlers"
	"github.com/campuslink/exchange-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	moderationHandler *handlers.ModerationHandler,
	qnaHandler *handlers.QnaHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Reports — filing goes through the sanction engine
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)

	// QnA
	api.Get("/questions", qnaHandler.ListQuestions)
	api.Get("/questions/:id", qnaHandler.GetQuestion)
	api.Post("/questions", middleware.JWTProtected(cfg), qnaHandler.CreateQuestion)
	api.Post("/questions/:id/replies", middleware.JWTProtected(cfg), qnaHandler.CreateReply)

	// Reviews
	api.Get("/reviews", reviewHandler.ListReviews)
	api.Get("/reviews/:id", reviewHandler.GetReview)
	api.Post("/reviews", middleware.JWTProtected(cfg), reviewHandler.CreateReview)
	api.Post("/reviews/:id/replies", middleware.JWTProtected(cfg), reviewHandler.CreateReply)

	// Admin moderation panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/reports", moderationHandler.ListReports)
	admin.Patch("/users/:id/status", moderationHandler.SetUserStatus)
	admin.Post("/users/:id/blind", moderationHandler.BlindUserContent)
	admin.Post("/users/:id/unblind", moderationHandler.UnblindUserContent)
	admin.Post("/users/:id/reset-reports", moderationHandler.ResetReportCount)
}
