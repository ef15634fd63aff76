package controllers

import (
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/app/delivery/http/views"
	"carelink-web/internal/app/services/core/auth"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/exceptions"
	"carelink-web/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase auth.AuthUsecase
	Renderer    *views.Renderer
}

func NewAuthController(logger *zap.Logger, authUsecase auth.AuthUsecase, renderer *views.Renderer) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
		Renderer:    renderer,
	}
}

func (ctrl *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	page := views.LoginPage{}
	if r.URL.Query().Get("signup") == "1" {
		page.Flash = constvars.SignupSuccess
	}
	ctrl.render(w, views.PageLogin, page)
}

func (ctrl *AuthController) SubmitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	request := &requests.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.render(w, views.PageLogin, views.LoginPage{
			Email: request.Email,
			Error: clientMessage(exceptions.ErrInputValidation(err)),
		})
		return
	}

	sessionID := middlewares.SessionIDFromContext(r.Context())
	path, err := ctrl.AuthUsecase.Login(r.Context(), sessionID, request)
	if err != nil {
		ctrl.render(w, views.PageLogin, views.LoginPage{
			Email: request.Email,
			Error: clientMessage(err),
		})
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (ctrl *AuthController) ShowSignup(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, views.PageSignup, views.SignupPage{Role: constvars.RolePatient})
}

func (ctrl *AuthController) SubmitSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	request := &requests.SignupForm{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.render(w, views.PageSignup, views.SignupPage{
			Name:  request.Name,
			Email: request.Email,
			Role:  request.Role,
			Error: clientMessage(exceptions.ErrInputValidation(err)),
		})
		return
	}

	if err := ctrl.AuthUsecase.Signup(r.Context(), request); err != nil {
		ctrl.render(w, views.PageSignup, views.SignupPage{
			Name:  request.Name,
			Email: request.Email,
			Role:  request.Role,
			Error: clientMessage(err),
		})
		return
	}

	http.Redirect(w, r, constvars.RouteLogin+"?signup=1", http.StatusSeeOther)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middlewares.SessionIDFromContext(r.Context())
	if err := ctrl.AuthUsecase.Logout(r.Context(), sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.Redirect(w, r, constvars.RouteLogin, http.StatusSeeOther)
}

func (ctrl *AuthController) render(w http.ResponseWriter, page string, data interface{}) {
	if err := ctrl.Renderer.Render(w, page, data); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}
