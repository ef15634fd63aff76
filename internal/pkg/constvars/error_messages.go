package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"simple_email": "must be a valid email address",
	"has_upper":    "must contain at least one uppercase letter",
	"has_digit":    "must contain at least one number",
	"account_role": "must be either 'doctor' or 'patient'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}
