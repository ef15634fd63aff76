package routers

import (
	"carelink-web/internal/app/delivery/http/controllers"
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(constvars.RolePatient))

		r.Get(constvars.RoutePatientDashboard, patientController.Dashboard)
		r.Get("/doctors/{doctorID}", patientController.DoctorDetail)
	})
}
