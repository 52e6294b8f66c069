package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaytee124/jobserverapi/api/http/handlers"
)

// Middleware applied to individual routes. Nil entries are skipped.
type Middleware struct {
	Auth fiber.Handler
}

// Register wires the job portal routes onto the given Fiber app.
func Register(app *fiber.App, jobs *handlers.JobHandler, auth *handlers.AuthHandler, cvs *handlers.SubmissionHandler, health *handlers.HealthHandler, mw Middleware) {
	app.Get("/", health.Root)

	// Probes
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/post-job", jobs.Post)
	app.Get("/all-jobs", jobs.List)
	app.Get("/all-jobs/:id", jobs.Get)
	app.Post("/all-jobs/:id", cvs.Submit)
	app.Get("/myJobs/:email", jobs.ListByPoster)
	app.Delete("/delete-job/:id", jobs.Delete)

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)
	if mw.Auth != nil {
		app.Get("/me", mw.Auth, auth.Me)
	}
}
