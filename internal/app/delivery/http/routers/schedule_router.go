package routers

import (
	"fmt"
	"openhours-service/internal/app/delivery/http/controllers"
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	byID := fmt.Sprintf("/{%s}", constvars.URLParamScheduleID)

	router.Get("/", scheduleController.FindAll)
	router.Post("/", scheduleController.CreateSchedule)
	router.Get(byID, scheduleController.FindByID)
	router.Put(byID, scheduleController.UpdateSchedule)
	router.Delete(byID, scheduleController.DeleteSchedule)
	router.Get(byID+"/hours", scheduleController.GetScheduleHours)
}
