package models

// User is the profile snapshot attached to a session. The upstream may
// omit it entirely on login; a session then holds token and role only.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
