// Package gate implements the login-form-to-content state machine that
// fronts each language's entry point.
package gate

import (
	"context"

	"github.com/leasemint/dataroom/internal/i18n"
	"github.com/leasemint/dataroom/internal/mailto"
	"github.com/leasemint/dataroom/internal/session"
)

// State is the gate's render target.
type State int

const (
	// LoggedOut renders the password form.
	LoggedOut State = iota
	// LoggedIn renders the content viewer and helper menu.
	LoggedIn
)

// Verifier validates a submitted credential. A nil return means verified;
// every non-nil error is treated the same way by the gate.
type Verifier interface {
	Verify(ctx context.Context, password string) error
}

// accessRequestSubject is the subject line for the request-access mail.
const accessRequestSubject = "LeaseMint – VC Access Request"

// Gate is the per-language access state machine. It is driven from a single
// goroutine; the in-flight guard serializes submissions at the UI level.
type Gate struct {
	lang     i18n.Language
	verifier Verifier
	session  *session.Store
	contact  mailto.Address

	state        State
	password     string
	errorMessage string
	inFlight     bool
}

// New creates a gate for the language. If the session already reports
// authenticated for this language, the gate mounts directly in LoggedIn, so
// a reload within the tab never re-prompts.
func New(lang i18n.Language, verifier Verifier, sess *session.Store, contact mailto.Address) *Gate {
	g := &Gate{
		lang:     lang,
		verifier: verifier,
		session:  sess,
		contact:  contact,
	}
	g.Refresh()
	return g
}

// Refresh re-derives the gate state from the session. Logout elsewhere
// returns the gate to LoggedOut; there is no terminal state.
func (g *Gate) Refresh() {
	if g.session.Authenticated(g.lang) {
		g.state = LoggedIn
	} else {
		g.state = LoggedOut
	}
}

// State returns the current render target.
func (g *Gate) State() State { return g.state }

// Lang returns the language this gate fronts.
func (g *Gate) Lang() i18n.Language { return g.lang }

// SetPassword updates the transient form field.
func (g *Gate) SetPassword(p string) { g.password = p }

// Password returns the transient form field.
func (g *Gate) Password() string { return g.password }

// ErrorMessage returns the last localized error text, empty when none.
func (g *Gate) ErrorMessage() string { return g.errorMessage }

// InFlight reports whether a verification call is outstanding; the submit
// control is disabled while true.
func (g *Gate) InFlight() bool { return g.inFlight }

// Submit runs one verification attempt. While a call is outstanding it is a
// no-op, so at most one verification is ever in flight. All failure causes
// collapse into the same generic localized message: the user cannot tell a
// wrong password from a network fault by the text shown.
func (g *Gate) Submit(ctx context.Context) {
	if g.inFlight || g.state == LoggedIn {
		return
	}

	g.errorMessage = ""
	g.inFlight = true
	err := g.verifier.Verify(ctx, g.password)
	g.inFlight = false

	if err != nil {
		g.errorMessage = i18n.T(g.lang).AccessDenied
		// Never pre-fill the field with the failed attempt.
		g.password = ""
		return
	}

	g.password = ""
	g.session.Login(g.lang)
	g.state = LoggedIn
}

// RequestAccessMailto assembles the pre-filled support mail link. The
// address is joined from its parts here, at click time, and is never present
// verbatim in markup.
func (g *Gate) RequestAccessMailto() string {
	return AccessRequestLink(g.contact)
}

// AccessRequestLink builds the request-access mail link for the given
// support address.
func AccessRequestLink(contact mailto.Address) string {
	return mailto.Link(contact, accessRequestSubject)
}
