package application

import "context"

// Destination names a protected screen of the client.
type Destination string

const (
	// DestinationSignIn is where unauthenticated visitors are sent.
	DestinationSignIn Destination = "login"
	// DestinationLanding is the post-login default when no destination
	// was remembered.
	DestinationLanding Destination = "home"
)

type DecisionKind string

const (
	// DecisionRender grants access to the protected content.
	DecisionRender DecisionKind = "render"
	// DecisionRedirect sends the visitor to the sign-in entry point.
	DecisionRedirect DecisionKind = "redirect"
	// DecisionPending asks the caller to show a neutral loading state;
	// neither content nor redirect may be emitted yet.
	DecisionPending DecisionKind = "pending"
)

type Decision struct {
	Kind           DecisionKind
	To             Destination
	RememberedFrom Destination
}

// RouteGuard gates every protected destination on the session state.
// It never exposes protected content, and never redirects, before the
// startup initialization check has completed.
type RouteGuard struct {
	sessions *SessionStore
}

func NewRouteGuard(sessions *SessionStore) *RouteGuard {
	return &RouteGuard{sessions: sessions}
}

func (g *RouteGuard) Evaluate(ctx context.Context, requested Destination) Decision {
	session := g.sessions.Snapshot()

	if session.Initializing {
		return Decision{Kind: DecisionPending}
	}

	if session.Authenticated() {
		return Decision{Kind: DecisionRender}
	}

	g.sessions.RememberRoute(ctx, string(requested))

	return Decision{
		Kind:           DecisionRedirect,
		To:             DestinationSignIn,
		RememberedFrom: requested,
	}
}

// ReturnTo resolves where a fresh login should land: the remembered
// destination if one exists, the fixed landing destination otherwise.
func (g *RouteGuard) ReturnTo(ctx context.Context) Destination {
	if route := g.sessions.ConsumeRememberedRoute(ctx); route != "" {
		return Destination(route)
	}

	return DestinationLanding
}
