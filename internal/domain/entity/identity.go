package entity

import "time"

// UserIdentity is an authenticated identity-provider user.
type UserIdentity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Session is returned by sign-in and sign-up.
type Session struct {
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	TokenType    string       `json:"token_type,omitempty"`
	ExpiresIn    int          `json:"expires_in,omitempty"`
	User         UserIdentity `json:"user"`
}

// HasToken reports whether the session can be used immediately. Sign-ups
// that require email confirmation return a user without a token.
func (s *Session) HasToken() bool {
	return s != nil && s.AccessToken != ""
}

// ProfileFields are stored on the profile created at sign-up.
type ProfileFields struct {
	FullName string `json:"full_name"`
}

// Auth state events
const (
	AuthEventSignedIn    = "SIGNED_IN"
	AuthEventSignedOut   = "SIGNED_OUT"
	AuthEventRoleChanged = "ROLE_CHANGED"
)

// AuthEvent is published whenever a user's session state changes.
type AuthEvent struct {
	Type   string    `json:"type"`
	UserID string    `json:"user_id"`
	Time   time.Time `json:"time"`
}
