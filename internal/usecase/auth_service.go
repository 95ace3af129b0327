package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

const entityAuth = "auth"

// AuthResult is a signed-in session and the access it grants.
type AuthResult struct {
	Session *entity.Session `json:"session"`
	Access  *entity.Access  `json:"access,omitempty"`
}

// AuthService signs users in and out.
type AuthService struct {
	identity repository.IdentityProvider
	profiles repository.ProfileRepository
	gate     *AccessGate
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	identity repository.IdentityProvider,
	profiles repository.ProfileRepository,
	gate *AccessGate,
	validate *validator.Validate,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		identity: identity,
		profiles: profiles,
		gate:     gate,
		validate: validate,
		logger:   logger,
	}
}

// SignIn authenticates with email and password. Callers without a profile
// still get a session; their access is nil.
func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateEntity(s.validate, entityAuth, req); err != nil {
		return nil, err
	}

	session, err := s.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	access, err := s.gate.ResolveAccess(ctx, session.AccessToken)
	if err != nil && !domainErrors.IsProfileNotFound(err) {
		return nil, err
	}

	s.gate.NotifySignedIn(ctx, session.User.ID)
	return &AuthResult{Session: session, Access: access}, nil
}

// AdminSignIn signs in and requires the admin role. Anyone else is signed
// out again and refused.
func (s *AuthService) AdminSignIn(ctx context.Context, req dto.SignInRequest) (*AuthResult, error) {
	result, err := s.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}

	if !result.Access.IsAdmin() {
		if err := s.gate.SignOut(ctx, result.Session.AccessToken); err != nil {
			s.logger.Warn("Failed to sign out rejected admin login", zap.Error(err))
		}
		s.logger.Warn("Admin login refused",
			zap.String("user_id", result.Session.User.ID))
		return nil, &domainErrors.AccessError{
			Type:    domainErrors.ErrTypeForbidden,
			Message: "Access Denied",
			UserID:  result.Session.User.ID,
		}
	}
	return result, nil
}

// SignUp registers a user and creates a viewer profile for them.
func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validateEntity(s.validate, entityAuth, req); err != nil {
		return nil, err
	}

	session, err := s.identity.SignUp(ctx, req.Email, req.Password, entity.ProfileFields{FullName: req.FullName})
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		ID:       session.User.ID,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     entity.RoleViewer,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		s.logger.Error("Failed to create profile for new user",
			zap.String("user_id", session.User.ID),
			zap.Error(err))
		return nil, err
	}

	result := &AuthResult{Session: session}
	if session.HasToken() {
		result.Access = &entity.Access{
			UserID:  profile.ID,
			Email:   profile.Email,
			Role:    profile.Role,
			Profile: profile,
		}
	}
	return result, nil
}

// SignOut ends the session carried by token.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.gate.SignOut(ctx, token)
}

// Me resolves the caller. Callers without a session are anonymous; callers
// without a profile are viewers with no profile.
func (s *AuthService) Me(ctx context.Context) (*entity.Access, error) {
	token := entity.SessionTokenFromContext(ctx)
	access, err := s.gate.ResolveAccess(ctx, token)
	switch {
	case err == nil:
		return access, nil
	case domainErrors.IsUnauthenticated(err):
		return entity.Anonymous(), nil
	case domainErrors.IsProfileNotFound(err):
		var accessErr *domainErrors.AccessError
		if errors.As(err, &accessErr) {
			return &entity.Access{UserID: accessErr.UserID, Role: entity.RoleViewer}, nil
		}
		return entity.Anonymous(), nil
	default:
		return nil, err
	}
}
