package requests

// LoginForm carries the login page submission. There is no client-side
// format validation beyond presence, matching the upstream contract.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupForm is validated field by field in declaration order; the first
// failing rule is the one surfaced to the user.
type SignupForm struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required,min=6,has_upper,has_digit"`
	Role     string `json:"role" validate:"required,account_role"`
}
