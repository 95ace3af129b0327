package entity

import "context"

// Role of the caller as seen by the access gate.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleViewer    Role = "viewer"
	RoleAnonymous Role = "anonymous"
)

// Profile is the authorization subject owned by the identity provider.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Access is the outcome of resolving a session.
type Access struct {
	UserID  string   `json:"user_id,omitempty"`
	Email   string   `json:"email,omitempty"`
	Role    Role     `json:"role"`
	Profile *Profile `json:"profile,omitempty"`
}

// IsAdmin is true only for a resolved admin profile.
func (a *Access) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin && a.Profile != nil
}

// Anonymous is the access of a caller without a session.
func Anonymous() *Access {
	return &Access{Role: RoleAnonymous}
}

type sessionTokenKey struct{}

// ContextWithSessionToken stores the caller's access token in ctx.
func ContextWithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionTokenFromContext returns the access token stored in ctx, if any.
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}
