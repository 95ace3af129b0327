package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// SupabaseIdentityProvider authenticates users against Supabase GoTrue.
// Access tokens are checked locally with the project's JWT secret.
type SupabaseIdentityProvider struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	jwtSecret string
	logger    *zap.Logger
}

// NewSupabaseIdentityProvider creates a new Supabase identity provider
func NewSupabaseIdentityProvider(
	baseURL string,
	apiKey string,
	jwtSecret string,
	logger *zap.Logger,
) domainRepo.IdentityProvider {
	return &SupabaseIdentityProvider{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type supabaseSession struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	User         *supabaseUser `json:"user"`

	// Sign-ups that need email confirmation return the bare user.
	ID    string `json:"id"`
	Email string `json:"email"`
}

type supabaseError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e supabaseError) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return "request rejected"
}

// GetCurrentUser verifies the access token signature and expiry.
func (p *SupabaseIdentityProvider) GetCurrentUser(ctx context.Context, accessToken string) (*entity.UserIdentity, error) {
	if accessToken == "" {
		return nil, nil
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		p.logger.Debug("Rejected access token", zap.Error(err))
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, nil
	}

	user := &entity.UserIdentity{ID: sub}
	user.Email, _ = claims["email"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		user.ExpiresAt = exp.Time
	}
	return user, nil
}

func (p *SupabaseIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session supabaseSession
	status, apiErr, err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &session)
	if err != nil {
		return nil, domainErrors.NewIdentityProviderError(err)
	}
	if apiErr != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, domainErrors.NewInvalidCredentialsError(fmt.Errorf("%s", apiErr.text()))
		}
		return nil, domainErrors.NewIdentityProviderError(fmt.Errorf("sign-in failed: status %d: %s", status, apiErr.text()))
	}

	p.logger.Info("User signed in", zap.String("email", email))
	return session.toEntity(), nil
}

func (p *SupabaseIdentityProvider) SignUp(ctx context.Context, email, password string, fields entity.ProfileFields) (*entity.Session, error) {
	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"full_name": fields.FullName,
		},
	}

	var session supabaseSession
	status, apiErr, err := p.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, &session)
	if err != nil {
		return nil, domainErrors.NewIdentityProviderError(err)
	}
	if apiErr != nil {
		if status >= 400 && status < 500 {
			return nil, domainErrors.NewSignUpRejectedError(apiErr.text())
		}
		return nil, domainErrors.NewIdentityProviderError(fmt.Errorf("sign-up failed: status %d: %s", status, apiErr.text()))
	}

	p.logger.Info("User signed up", zap.String("email", email))
	return session.toEntity(), nil
}

// SignOut revokes the session server-side. An already invalid token is not an error.
func (p *SupabaseIdentityProvider) SignOut(ctx context.Context, accessToken string) error {
	status, apiErr, err := p.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
	if err != nil {
		return domainErrors.NewIdentityProviderError(err)
	}
	if apiErr != nil && status != http.StatusUnauthorized && status != http.StatusForbidden && status != http.StatusNotFound {
		return domainErrors.NewIdentityProviderError(fmt.Errorf("sign-out failed: status %d: %s", status, apiErr.text()))
	}
	return nil
}

// do sends a GoTrue request. A non-2xx response is returned as apiErr with a nil err.
func (p *SupabaseIdentityProvider) do(ctx context.Context, method, path, bearer string, in, out interface{}) (int, *supabaseError, error) {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if bearer == "" {
		bearer = p.apiKey
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("Supabase auth request failed",
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return 0, nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr supabaseError
		_ = json.Unmarshal(raw, &apiErr)
		p.logger.Warn("Supabase auth returned non-2xx status",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("response_body", raw))
		return resp.StatusCode, &apiErr, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp.StatusCode, nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil, nil
}

func (s *supabaseSession) toEntity() *entity.Session {
	session := &entity.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
	}
	if s.User != nil {
		session.User = entity.UserIdentity{ID: s.User.ID, Email: s.User.Email}
	} else {
		session.User = entity.UserIdentity{ID: s.ID, Email: s.Email}
	}
	if s.ExpiresIn > 0 {
		session.User.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return session
}
