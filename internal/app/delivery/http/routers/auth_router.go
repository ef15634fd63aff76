package routers

import (
	"carelink-web/internal/app/delivery/http/controllers"
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.RedirectAuthenticated).Get(constvars.RouteLogin, authController.ShowLogin)
	router.Post(constvars.RouteLogin, authController.SubmitLogin)
	router.With(middlewares.RedirectAuthenticated).Get(constvars.RouteSignup, authController.ShowSignup)
	router.Post(constvars.RouteSignup, authController.SubmitSignup)
	router.With(middlewares.RequireSession).Post(constvars.RouteLogout, authController.Logout)
}
