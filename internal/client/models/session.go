package models

// State is the authentication state of the Session.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateFailed         State = "failed"
)

// Session is the in-memory representation of the current authentication
// status. IsAuthenticated holds iff User and Token are both set by a
// successful authentication or restoration; IsLoading is true only while an
// action is in flight. A Failed session carries Error and is otherwise
// equivalent to Anonymous.
type Session struct {
	User            *UserProfile
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	State           State
}

// AnonymousSession returns the unauthenticated defaults.
func AnonymousSession() Session {
	return Session{State: StateAnonymous}
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	c := s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return c
}
