package routers

import (
	"openhours-service/internal/app/delivery/http/controllers"
	"openhours-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOpenHoursRoutes(router chi.Router, middlewares *middlewares.Middlewares, openHoursController *controllers.OpenHoursController) {
	computeLimiter := middlewares.ComputeRateLimiter()
	router.With(computeLimiter.Limit).Post("/compute", openHoursController.Compute)
}
