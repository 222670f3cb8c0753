package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	feedHandler *handlers.FeedHandler,
	userHandler *handlers.UserHandler,
	recoveryHandler *handlers.RecoveryHandler,
) {
	// Public write rate limiter: 60 req/min per IP
	publicWrite := limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		},
	})
	userRequired := middleware.UserRequired()
	moderator := middleware.ModeratorRequired(cfg)

	app.Use(middleware.Identity(cfg))

	app.Get("/health", healthHandler.Check)

	// Reports: anyone may file one, moderators review them
	app.Post("/reports", publicWrite, reportHandler.CreateReport)
	app.Get("/reports/stats", moderator, reportHandler.Stats)
	app.Get("/reports", moderator, reportHandler.ListReports)
	app.Patch("/reports/:id", moderator, reportHandler.UpdateReport)

	// Feed
	app.Get("/posts", feedHandler.ListPosts)
	app.Post("/posts", userRequired, feedHandler.CreatePost)
	app.Get("/posts/:id", feedHandler.GetPost)
	app.Delete("/posts/:id", userRequired, feedHandler.DeletePost)
	app.Get("/posts/:id/comments", feedHandler.ListComments)
	app.Post("/posts/:id/comments", userRequired, feedHandler.CreateComment)
	app.Post("/posts/:id/reactions", userRequired, feedHandler.ReactToPost)
	app.Delete("/comments/:id", userRequired, feedHandler.DeleteComment)
	app.Post("/comments/:id/reactions", userRequired, feedHandler.ReactToComment)

	// Users
	app.Post("/users", publicWrite, userHandler.CreateUser)
	app.Get("/users/:id", userHandler.GetUser)
	app.Patch("/users/:id", userRequired, userHandler.UpdateProfile)
	app.Delete("/users/:id", userRequired, userHandler.DeleteUser)

	// Recovery tracking
	app.Get("/addictions", recoveryHandler.ListAddictions)
	app.Post("/addictions", publicWrite, recoveryHandler.CreateAddiction)
	app.Get("/users/:id/addictions", recoveryHandler.ListUserAddictions)
	app.Post("/users/:id/addictions", userRequired, recoveryHandler.LinkAddiction)
	app.Get("/user-addictions/:id/logs", userRequired, recoveryHandler.ListSobrietyLogs)
	app.Post("/user-addictions/:id/logs", userRequired, recoveryHandler.LogSobriety)
	app.Get("/users/:id/craving-logs", userRequired, recoveryHandler.ListCravingLogs)
	app.Post("/users/:id/craving-logs", userRequired, recoveryHandler.LogCraving)
	app.Get("/users/:id/mood-logs", userRequired, recoveryHandler.ListMoodLogs)
	app.Post("/users/:id/mood-logs", userRequired, recoveryHandler.LogMood)
}
