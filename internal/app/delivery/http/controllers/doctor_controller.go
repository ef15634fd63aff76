package controllers

import (
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/app/delivery/http/views"
	"carelink-web/internal/app/services/core/doctors"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/exceptions"
	"carelink-web/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase doctors.DoctorUsecase
	SessionStore  sessions.SessionStore
	Renderer      *views.Renderer
}

func NewDoctorController(
	logger *zap.Logger,
	doctorUsecase doctors.DoctorUsecase,
	sessionStore sessions.SessionStore,
	renderer *views.Renderer,
) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
		SessionStore:  sessionStore,
		Renderer:      renderer,
	}
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := middlewares.SessionStateFromContext(r.Context())

	page := views.DoctorDashboardPage{}
	if state.User != nil {
		page.DoctorName = state.User.Name
	}

	online, err := ctrl.DoctorUsecase.Status(r.Context(), state.Token)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			dropTokenAndRedirect(ctrl.Log, ctrl.SessionStore, w, r)
			return
		}
		// The fetch failure is already logged; the dashboard falls back
		// to offline rather than block the page.
	}
	page.Online = online

	ctrl.render(w, views.PageDoctorDashboard, page)
}

func (ctrl *DoctorController) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseForm(err))
		return
	}

	state := middlewares.SessionStateFromContext(r.Context())
	current := r.PostFormValue("current") == "true"

	online, err := ctrl.DoctorUsecase.Toggle(r.Context(), state.Token, current)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			dropTokenAndRedirect(ctrl.Log, ctrl.SessionStore, w, r)
			return
		}

		page := views.DoctorDashboardPage{
			Online: online,
			Error:  clientMessage(err),
		}
		if state.User != nil {
			page.DoctorName = state.User.Name
		}
		ctrl.render(w, views.PageDoctorDashboard, page)
		return
	}

	http.Redirect(w, r, constvars.RouteDoctorDashboard, http.StatusSeeOther)
}

func (ctrl *DoctorController) render(w http.ResponseWriter, page string, data interface{}) {
	if err := ctrl.Renderer.Render(w, page, data); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}
