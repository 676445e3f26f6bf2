package teddy

// Session holds the bearer token issued by a successful login. It is a plain
// value owned by exactly one account loop; it is never shared across
// goroutines and there is no concurrent refresh. Once Clear is called the
// token is gone and every authenticated call fails with ErrNotAuthenticated.
type Session struct {
	Token string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

func (s *Session) Clear() {
	if s != nil {
		s.Token = ""
	}
}
