// Package views names the client's screens and fixes which of them a session
// may reach. The active view is explicit state, not something derived from
// the address bar; a reload always lands on the initial view for the current
// session, except for the two one-shot payment-result views which Stripe
// reaches by URL.
package views

type Name string

const (
	Landing    Name = "landing"
	Login      Name = "login"
	Register   Name = "register"
	Generator  Name = "generator"
	History    Name = "history"
	Statistics Name = "statistics"
	Premium    Name = "premium"
	Reviews    Name = "reviews"
	Success    Name = "success"
	Cancel     Name = "cancel"
)

// needsAuth is the reachability table: true means the view is only for
// signed-in sessions, false means it is only for signed-out ones. The
// payment-result terminals are reachable either way.
var needsAuth = map[Name]bool{
	Landing:    false,
	Login:      false,
	Register:   false,
	Generator:  true,
	History:    true,
	Statistics: true,
	Premium:    true,
	Reviews:    true,
}

var terminal = map[Name]bool{
	Success: true,
	Cancel:  true,
}

func Valid(n Name) bool {
	_, ok := needsAuth[n]
	return ok || terminal[n]
}

// Allowed reports whether a session in the given auth state may activate the
// view.
func Allowed(to Name, authenticated bool) bool {
	if terminal[to] {
		return true
	}
	auth, ok := needsAuth[to]
	if !ok {
		return false
	}
	return auth == authenticated
}

// Initial is where a fresh page load lands: the history view for a signed-in
// session, the public landing view otherwise.
func Initial(authenticated bool) Name {
	if authenticated {
		return History
	}
	return Landing
}

// Path maps a view to its route.
func Path(n Name) string {
	switch n {
	case Landing:
		return "/landing"
	case Login:
		return "/login"
	case Register:
		return "/register"
	case Generator:
		return "/generator"
	case History:
		return "/history"
	case Statistics:
		return "/statistics"
	case Premium:
		return "/premium"
	case Reviews:
		return "/reviews"
	case Success:
		return "/payment/success"
	case Cancel:
		return "/payment/cancel"
	default:
		return "/"
	}
}
