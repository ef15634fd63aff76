package sessions

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticatedDerivedFromToken(t *testing.T) {
	var state State
	assert.False(t, state.Authenticated(), "zero state must be anonymous")

	state = Login(state, responses.Credentials{Token: "t", Role: "doctor"})
	assert.True(t, state.Authenticated())

	state = Logout(state)
	assert.False(t, state.Authenticated(), "logout must drop authentication")

	state = Login(state, responses.Credentials{Token: "t2", Role: "patient"})
	assert.True(t, state.Authenticated(), "login after logout re-authenticates")
}

func TestLoginReplacesWholeSession(t *testing.T) {
	state := Login(State{}, responses.Credentials{
		Token: "tok-1",
		Role:  "doctor",
		User:  &models.User{Name: "Ann", Email: "ann@clinic.test"},
	})

	assert.Equal(t, "tok-1", state.Token)
	assert.Equal(t, "doctor", state.Role)
	assert.Equal(t, "Ann", state.User.Name)
	assert.False(t, state.CreatedAt.IsZero())
}

func TestLoginWithoutUserSnapshot(t *testing.T) {
	state := Login(State{User: &models.User{Name: "stale"}}, responses.Credentials{Token: "t", Role: "patient"})

	assert.True(t, state.Authenticated())
	assert.Nil(t, state.User, "login without a profile must not keep the previous one")
}

func TestSetUserDoesNotAuthenticate(t *testing.T) {
	state := SetUser(State{}, &models.User{Name: "Jo"})

	assert.Equal(t, "Jo", state.User.Name)
	assert.False(t, state.Authenticated(), "a profile without a token is still anonymous")
}

func TestSetRoleOverwritesIndependently(t *testing.T) {
	state := Login(State{}, responses.Credentials{Token: "t", Role: "patient"})
	state = SetRole(state, "doctor")

	assert.Equal(t, "doctor", state.Role)
	assert.Equal(t, "t", state.Token, "role change must not touch the credential")
}

func TestLogoutZeroesEverything(t *testing.T) {
	state := Login(State{}, responses.Credentials{
		Token: "t",
		Role:  "doctor",
		User:  &models.User{Name: "Ann"},
	})

	state = Logout(state)

	assert.Equal(t, State{}, state)
}
