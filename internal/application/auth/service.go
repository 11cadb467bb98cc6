// Package auth implements registration, login, and token refresh.
package auth

import (
	"context"
	"errors"
	"fmt"

	"eduhub/internal/domain/user"
	"eduhub/internal/infrastructure/auth"
	"eduhub/internal/infrastructure/email"
	"eduhub/internal/infrastructure/ratelimit"
	"eduhub/internal/shared/authorization"
	"eduhub/internal/shared/constants"
	apperrors "eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
	VerifyRefresh(tokenString string) (*auth.Claims, error)
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID       uint
	Name         string
	Email        string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type Service struct {
	userRepo    user.Repository
	hasher      PasswordHasher
	tokens      TokenService
	mailer      email.Service
	limiter     ratelimit.RateLimiter
	loginLimits ratelimit.Limits
	logger      logger.Interface
}

func NewService(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	mailer email.Service,
	limiter ratelimit.RateLimiter,
	loginLimits ratelimit.Limits,
	log logger.Interface,
) *Service {
	return &Service{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		limiter:     limiter,
		loginLimits: loginLimits,
		logger:      log,
	}
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	s.logger.Infow("registering user", "email", cmd.Email)

	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters long")
	}

	if _, err := s.userRepo.GetByEmail(ctx, cmd.Email); err == nil {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleStudent)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, u); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.mailer.SendWelcomeEmail(ctx, u.Email(), u.Name().String()); err != nil {
		s.logger.Warnw("failed to send welcome email", "user_id", u.ID(), "error", err)
	}

	return s.issueTokens(u)
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	key := fmt.Sprintf("%s:%s", constants.RateLimitKeyLogin, cmd.Email)
	allowed, err := s.limiter.Allow(ctx, key, s.loginLimits)
	if err != nil {
		// Rate limiting is advisory; redis being down must not lock users out.
		s.logger.Warnw("rate limiter unavailable", "error", err)
	} else if !allowed {
		return nil, apperrors.NewBadRequestError("too many login attempts, try again later")
	}

	u, err := s.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}

	if err := s.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		s.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return s.issueTokens(u)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !u.IsActive() {
		return nil, apperrors.NewUnauthorizedError("account is deactivated")
	}

	return s.issueTokens(u)
}

func (s *Service) issueTokens(u *user.User) (*AuthResult, error) {
	pair, err := s.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResult{
		UserID:       u.ID(),
		Name:         u.Name().String(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
