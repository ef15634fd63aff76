package sessions

import "context"

// SessionStore mirrors session state into durable storage keyed by the
// opaque session ID from the browser cookie. A reload reconstructs the
// same session without re-authenticating.
type SessionStore interface {
	// Load hydrates the state for sessionID. A session that was never
	// saved (or has expired) loads as the zero State, not an error.
	Load(ctx context.Context, sessionID string) (State, error)

	// Save persists the full state under the store's TTL.
	Save(ctx context.Context, sessionID string, state State) error

	// Purge removes the mirror entirely. Combined with the in-memory
	// Logout transition this makes logout one atomic operation: no
	// reload can resurrect a logged-out credential.
	Purge(ctx context.Context, sessionID string) error

	// DropToken clears only the stored credential, keeping role and
	// profile. This is the reaction to an unauthorized upstream
	// response.
	DropToken(ctx context.Context, sessionID string) error
}
