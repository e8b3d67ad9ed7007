// Package routeguard is the navigation contract shared with the SPA: a pure
// decision over the session state, with no side effects. The server enforces
// the same rules in its middleware; this is the single place the truth table
// is written down.
package routeguard

// Decision says what a client should render for a protected view.
type Decision int

const (
	// DecisionLogin: not authenticated, redirect to the login view.
	DecisionLogin Decision = iota
	// DecisionInactive: authenticated but the account is deactivated; show a
	// blocking state with no bypass.
	DecisionInactive
	// DecisionForbidden: the user's role is not in the required set.
	DecisionForbidden
	// DecisionAllow: render the protected content.
	DecisionAllow
)

// Session is the guard's view of the current user.
type Session struct {
	Role     string
	IsActive bool
}

// Decide applies the guard truth table.
func Decide(isAuthenticated bool, user *Session, requiredRoles []string) Decision {
	if !isAuthenticated || user == nil {
		return DecisionLogin
	}
	if !user.IsActive {
		return DecisionInactive
	}
	if len(requiredRoles) == 0 {
		return DecisionAllow
	}
	for _, r := range requiredRoles {
		if user.Role == r {
			return DecisionAllow
		}
	}
	return DecisionForbidden
}
