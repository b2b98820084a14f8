package domain

const (
	LoginPath   = "/login"
	LandingPath = "/dashboard"
)

// Outcome is the result of evaluating a navigation attempt.
type Outcome int

const (
	// OutcomeLoading: the startup load has not finished, no decision is made.
	OutcomeLoading Outcome = iota
	OutcomeRedirectLogin
	OutcomeAllow
	OutcomeRedirectLanding
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRedirectLogin:
		return "redirect_login"
	case OutcomeAllow:
		return "allow"
	case OutcomeRedirectLanding:
		return "redirect_landing"
	default:
		return "unknown"
	}
}

// Decision tells the router what to do with a navigation attempt. Location is
// set for redirects only.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Decide evaluates a navigation attempt against the current session state.
// required may be empty for destinations that only need a session.
func Decide(state SessionState, required Role) Decision {
	if state.IsInitializing {
		return Decision{Outcome: OutcomeLoading}
	}
	if !state.IsAuthenticated || state.User == nil {
		return Decision{Outcome: OutcomeRedirectLogin, Location: LoginPath}
	}
	if !state.Role().Satisfies(required) {
		return Decision{Outcome: OutcomeRedirectLanding, Location: LandingPath}
	}
	return Decision{Outcome: OutcomeAllow}
}
