// Package session holds the client-side record of who is signed in and the
// screen-level state machine gating the application. Nothing here is ever
// persisted: a new process always starts at the landing state.
package session

import (
	"errors"
)

// State is the screen the application is on.
type State int

const (
	StateLanding State = iota
	StateLogin
	StateDashboard
)

func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateLogin:
		return "login"
	case StateDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Mode is the login screen's sub-mode.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// Session is the authenticated identity, held in memory only.
type Session struct {
	Name  string
	Email string
}

var ErrInvalidTransition = errors.New("invalid state transition")

// Gate is the Landing → Login → Dashboard state machine. The zero value is
// a fresh gate at the landing state in sign-in mode.
type Gate struct {
	state   State
	mode    Mode
	session *Session
}

// State returns the current screen.
func (g *Gate) State() State {
	return g.state
}

// Mode returns the login sub-mode.
func (g *Gate) Mode() Mode {
	return g.mode
}

// Session returns the signed-in identity, or nil outside the dashboard.
func (g *Gate) Session() *Session {
	return g.session
}

// Begin moves from the landing screen to the login screen.
func (g *Gate) Begin() error {
	if g.state != StateLanding {
		return ErrInvalidTransition
	}
	g.state = StateLogin
	return nil
}

// ToggleMode flips between sign-in and sign-up on the login screen.
func (g *Gate) ToggleMode() error {
	if g.state != StateLogin {
		return ErrInvalidTransition
	}
	if g.mode == ModeSignIn {
		g.mode = ModeSignUp
	} else {
		g.mode = ModeSignIn
	}
	return nil
}

// Authenticated records a successful login or registration and enters the
// dashboard.
func (g *Gate) Authenticated(name, email string) error {
	if g.state != StateLogin {
		return ErrInvalidTransition
	}
	g.session = &Session{Name: name, Email: email}
	g.state = StateDashboard
	return nil
}

// Logout clears the session and returns to the landing screen. Local
// feature state is untouched and reloads on the next login with the same
// email.
func (g *Gate) Logout() error {
	if g.state != StateDashboard {
		return ErrInvalidTransition
	}
	g.session = nil
	g.state = StateLanding
	g.mode = ModeSignIn
	return nil
}
