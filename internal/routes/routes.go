package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkowalczyk/fittracker/internal/handlers"
)

func Setup(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	trainingHandler *handlers.TrainingHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	// General API rate limiter: 120 req/min per IP
	v1.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Fixed segments are registered before the parameterized lookups so
	// /simple, /byName etc. are not captured as ids.
	users := v1.Group("/users")
	users.Get("/", userHandler.GetAllUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/simple", userHandler.GetBasicUsers)
	users.Get("/byName", userHandler.GetUsersByName)
	users.Get("/email", userHandler.GetUsersByEmail)
	users.Get("/olderThanAge/:age", userHandler.GetUsersOlderThanAge)
	users.Get("/older/:time", userHandler.GetUsersOlderThan)
	users.Get("/:id", userHandler.GetUserByID)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Put("/:user_id", userHandler.UpdateUser)

	trainings := v1.Group("/trainings")
	trainings.Get("/", trainingHandler.GetAllTrainings)
	trainings.Post("/", trainingHandler.CreateTraining)
	trainings.Get("/activityType", trainingHandler.GetByActivityType)
	trainings.Get("/finished/:afterTime", trainingHandler.GetFinishedAfter)
	trainings.Get("/:userId", trainingHandler.GetByUser)
	trainings.Put("/:trainingId", trainingHandler.UpdateTraining)
}
