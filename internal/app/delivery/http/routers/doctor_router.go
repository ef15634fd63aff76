package routers

import (
	"carelink-web/internal/app/delivery/http/controllers"
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(constvars.RoleDoctor))

		r.Get(constvars.RouteDoctorDashboard, doctorController.Dashboard)
		r.Post(constvars.RouteDoctorDashboard+"/status", doctorController.ToggleStatus)
	})
}
