package constvars

// Client messages are safe to show to end users.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password. Please try again."
	ErrClientSignupFailed                  = "Signup failed. Please try again."
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientStatusUpdateFailed            = "Failed to update status. Please try again."
	ErrClientDoctorNotFound                = "Doctor not found"
)

// Dev messages end up in logs only.
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotParseForm    = "cannot parse form body"
	ErrDevValidationFailed   = "validation failed"
	ErrDevInvalidCredentials = "invalid credentials"
	ErrDevUnauthorized       = "unauthorized access"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	ErrDevUpstreamLogin          = "upstream login request failed"
	ErrDevUpstreamSignup         = "upstream signup request failed"
	ErrDevUpstreamStatus         = "upstream doctor status request failed"
	ErrDevUpstreamOnlineDoctors  = "upstream online doctors request failed"
	ErrDevUpstreamDoctorDetail   = "upstream doctor detail request failed"
	ErrDevUpstreamDecodeResponse = "failed to decode upstream response"
	ErrDevUpstreamShape          = "upstream response has an undocumented shape"
	ErrDevUpstreamUnavailable    = "upstream temporarily unavailable"

	ErrDevRedisSet    = "failed to set value into redis"
	ErrDevRedisGet    = "failed to get value from redis"
	ErrDevRedisDelete = "failed to delete value from redis"
	ErrDevRedisExpire = "failed to set expiry on redis key"

	ErrDevRedisStoreSession = "failed to store session data into redis"
	ErrDevRedisLoadSession  = "failed to load session data from redis"
	ErrDevRedisPurgeSession = "failed to purge session data from redis"

	ErrDevSessionMissing            = "no session for request"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerParseSessionData    = "failed to parse session data"
	ErrDevServerRenderTemplate      = "failed to render template"
	ErrDevServerInternalError       = "internal server error"
	ErrDevServerNotFound            = "resource not found"
	ErrDevRequestLimitExceeded      = "request limit exceeded"
	ErrDevServiceUnavailable        = "service temporarily unavailable"
	ErrDevURLParamValidationFailed  = "failed to validate URL parameter: %s"
	ErrDevUnexpectedUpstreamStatus  = "unexpected upstream status code: %d"
	ErrDevUpstreamMessagePayload    = "upstream error payload carried no message"
	ErrDevUpstreamCircuitOpen       = "upstream circuit breaker is open"
)
