package doctors

import "context"

type DoctorUsecase interface {
	// Status fetches the doctor's current availability flag.
	Status(ctx context.Context, token string) (bool, error)

	// Toggle flips the availability flag from its current value. On
	// success it returns the value the upstream confirmed; on failure
	// it returns the pre-toggle value alongside the error, so the
	// caller shows the state that is actually in effect.
	Toggle(ctx context.Context, token string, current bool) (bool, error)
}
