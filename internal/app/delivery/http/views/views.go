package views

import (
	"bytes"
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/exceptions"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"carelink-web/internal/pkg/constvars"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageLogin            = "login"
	PageSignup           = "signup"
	PageDoctorDashboard  = "doctor_dashboard"
	PagePatientDashboard = "patient_dashboard"
	PageDoctorDetail     = "doctor_detail"
)

type LoginPage struct {
	Email string
	Error string
	Flash string
}

type SignupPage struct {
	Name  string
	Email string
	Role  string
	Error string
}

type DoctorDashboardPage struct {
	DoctorName string
	Online     bool
	Error      string
}

type PatientDashboardPage struct {
	PatientName    string
	Doctors        []models.Doctor
	Specialization string
	Search         string
	EmptyMessage   string
	Error          string
}

type DoctorDetailPage struct {
	Doctor *models.Doctor
}

// Renderer holds one parsed template set per page, each sharing the
// layout. Pages render into a buffer first so a template failure never
// leaves a half-written response.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names := []string{
		PageLogin,
		PageSignup,
		PageDoctorDashboard,
		PagePatientDashboard,
		PageDoctorDetail,
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return exceptions.ErrRenderTemplate(fmt.Errorf("unknown page %q", page))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return exceptions.ErrRenderTemplate(err)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	_, err := buf.WriteTo(w)
	return err
}
