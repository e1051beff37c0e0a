package credentials

// Session is the authenticated identity persisted by the credential store:
// the backend-issued token pair plus the identifier of the user they belong
// to. A session is either complete (all three fields set) or absent — no
// partial session is ever persisted or returned.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// IsZero reports whether the session is absent (no field set).
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.UserID == ""
}

// Complete reports whether all three fields are present.
func (s Session) Complete() bool {
	return s.AccessToken != "" && s.RefreshToken != "" && s.UserID != ""
}

// Status derives the auth status from session presence.
func (s Session) Status() AuthStatus {
	if s.Complete() {
		return StatusAuthenticated
	}
	return StatusUnauthenticated
}
