package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"
	SignupSuccess = "Account created. Please sign in."

	// Dashboard messages
	StatusUpdateSuccess = "status updated successfully"
	NoOnlineDoctors     = "No doctors are online right now. Please check back later."
)
