package sessions

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/dto/responses"
	"time"
)

// State is the session record for one browser. Transitions below are
// pure; persisting a transitioned state is the caller's job, via a
// SessionStore. Keeping the two apart makes the machine testable
// without Redis.
type State struct {
	Token     string       `json:"token,omitempty"`
	Role      string       `json:"role,omitempty"`
	User      *models.User `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

// Authenticated is derived from token presence. It is deliberately not
// a stored field, so no transition can leave the flag and the
// credential disagreeing.
func (s State) Authenticated() bool {
	return s.Token != ""
}

// Login replaces the whole session with the upstream credentials.
func Login(s State, creds responses.Credentials) State {
	s.Token = creds.Token
	s.Role = creds.Role
	s.User = creds.User
	s.CreatedAt = time.Now().UTC()
	return s
}

// Logout zeroes every field.
func Logout(State) State {
	return State{}
}

// SetUser replaces the profile snapshot only. Authentication is
// untouched: a profile without a credential is still an anonymous
// session.
func SetUser(s State, user *models.User) State {
	s.User = user
	return s
}

// SetRole overwrites the role independent of Login.
func SetRole(s State, role string) State {
	s.Role = role
	return s
}
