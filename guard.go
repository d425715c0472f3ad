package console

// GuardDecision tells the embedding UI what to render for a protected view.
type GuardDecision int

const (
	// GuardLoading: the session is still being checked; render a
	// placeholder, not the protected content.
	GuardLoading GuardDecision = iota
	// GuardRedirect: the session is unauthenticated; navigation to the
	// login entry point has been triggered, render nothing.
	GuardRedirect
	// GuardAllow: render the protected content.
	GuardAllow
)

// Guard gates protected views on session state. It holds no state of its
// own; every Check reads the store.
type Guard struct {
	c *Console
}

// Guard returns the auth gate for this console.
func (c *Console) Guard() *Guard { return &Guard{c: c} }

// Check evaluates the session and, for unauthenticated sessions, triggers
// the redirect to the login entry point.
func (g *Guard) Check() GuardDecision {
	snap := g.c.session.Snapshot()
	switch {
	case snap.IsLoading:
		return GuardLoading
	case !snap.IsAuthenticated:
		g.c.session.RedirectToLogin()
		return GuardRedirect
	default:
		return GuardAllow
	}
}
