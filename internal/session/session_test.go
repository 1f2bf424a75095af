package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate_FullCycle(t *testing.T) {
	var g Gate

	require.Equal(t, StateLanding, g.State())
	require.Nil(t, g.Session())

	require.NoError(t, g.Begin())
	require.Equal(t, StateLogin, g.State())

	require.NoError(t, g.ToggleMode())
	require.Equal(t, ModeSignUp, g.Mode())
	require.NoError(t, g.ToggleMode())
	require.Equal(t, ModeSignIn, g.Mode())

	require.NoError(t, g.Authenticated("Ana", "ana@x.com"))
	require.Equal(t, StateDashboard, g.State())
	require.Equal(t, &Session{Name: "Ana", Email: "ana@x.com"}, g.Session())

	require.NoError(t, g.Logout())
	require.Equal(t, StateLanding, g.State())
	require.Nil(t, g.Session())
	require.Equal(t, ModeSignIn, g.Mode())
}

func TestGate_InvalidTransitions(t *testing.T) {
	var g Gate

	// Nothing but Begin is valid at landing.
	require.ErrorIs(t, g.ToggleMode(), ErrInvalidTransition)
	require.ErrorIs(t, g.Authenticated("Ana", "ana@x.com"), ErrInvalidTransition)
	require.ErrorIs(t, g.Logout(), ErrInvalidTransition)

	require.NoError(t, g.Begin())
	require.ErrorIs(t, g.Begin(), ErrInvalidTransition)
	require.ErrorIs(t, g.Logout(), ErrInvalidTransition)

	require.NoError(t, g.Authenticated("Ana", "ana@x.com"))
	require.ErrorIs(t, g.Begin(), ErrInvalidTransition)
	require.ErrorIs(t, g.ToggleMode(), ErrInvalidTransition)
	require.ErrorIs(t, g.Authenticated("Bea", "bea@x.com"), ErrInvalidTransition)

	// State is unchanged after the failed calls.
	require.Equal(t, StateDashboard, g.State())
	require.Equal(t, "ana@x.com", g.Session().Email)
}

func TestGate_FreshGateAlwaysStartsAtLanding(t *testing.T) {
	// There is no persistence hook: a new Gate is a clean landing screen
	// regardless of what any previous one did.
	first := &Gate{}
	require.NoError(t, first.Begin())
	require.NoError(t, first.Authenticated("Ana", "ana@x.com"))

	second := &Gate{}
	require.Equal(t, StateLanding, second.State())
	require.Nil(t, second.Session())
}
