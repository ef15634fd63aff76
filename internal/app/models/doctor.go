package models

// Doctor is the summary record the upstream directory returns for a
// doctor account. The upstream uses Mongo-style identifiers.
type Doctor struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization,omitempty"`
	IsOnline       bool   `json:"isOnline,omitempty"`
}
