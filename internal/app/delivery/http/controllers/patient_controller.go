package controllers

import (
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/app/delivery/http/views"
	"carelink-web/internal/app/services/core/patients"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/exceptions"
	"carelink-web/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase patients.PatientUsecase
	SessionStore   sessions.SessionStore
	Renderer       *views.Renderer
}

func NewPatientController(
	logger *zap.Logger,
	patientUsecase patients.PatientUsecase,
	sessionStore sessions.SessionStore,
	renderer *views.Renderer,
) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		SessionStore:   sessionStore,
		Renderer:       renderer,
	}
}

func (ctrl *PatientController) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := middlewares.SessionStateFromContext(r.Context())

	filter := requests.DoctorListFilter{
		Specialization: strings.TrimSpace(r.URL.Query().Get("specialization")),
		Search:         strings.TrimSpace(r.URL.Query().Get("search")),
	}

	page := views.PatientDashboardPage{
		Specialization: filter.Specialization,
		Search:         filter.Search,
		EmptyMessage:   constvars.NoOnlineDoctors,
	}
	if state.User != nil {
		page.PatientName = state.User.Name
	}

	doctors, err := ctrl.PatientUsecase.OnlineDoctors(r.Context(), state.Token, filter)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			dropTokenAndRedirect(ctrl.Log, ctrl.SessionStore, w, r)
			return
		}
		// A failed fetch degrades to the empty state; the failure is
		// already logged with the request ID.
	}
	page.Doctors = doctors

	ctrl.render(w, views.PagePatientDashboard, page)
}

func (ctrl *PatientController) DoctorDetail(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(errors.New("empty doctorID"), "doctorID"))
		return
	}

	state := middlewares.SessionStateFromContext(r.Context())

	doctor, err := ctrl.PatientUsecase.Doctor(r.Context(), state.Token, doctorID)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			dropTokenAndRedirect(ctrl.Log, ctrl.SessionStore, w, r)
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.render(w, views.PageDoctorDetail, views.DoctorDetailPage{Doctor: doctor})
}

func (ctrl *PatientController) render(w http.ResponseWriter, page string, data interface{}) {
	if err := ctrl.Renderer.Render(w, page, data); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}
