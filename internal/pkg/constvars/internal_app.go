package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_STATE_KEY        ContextKey = "session_state"
)

const (
	REQUEST_ID_PREFIX = "CRLNK_WEB_"
)

const (
	// SessionCookieName carries the opaque session ID between browser and app.
	SessionCookieName = "carelink_session"

	// SessionKeyPrefix namespaces the durable session mirror in Redis.
	SessionKeyPrefix = "session:"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	RouteLogin            = "/"
	RouteSignup           = "/signup"
	RouteLogout           = "/logout"
	RouteDoctorDashboard  = "/doctor-dashboard"
	RoutePatientDashboard = "/patient-dashboard"
)
