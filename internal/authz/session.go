package authz

// Session is the per-request identity, rebuilt from the token and the
// current account row on every request. A zero Session is anonymous.
type Session struct {
	AccountID   string
	DisplayName string
	Email       string
	Role        string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.AccountID != ""
}
