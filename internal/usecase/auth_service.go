package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
	"github.com/user/provider-registry/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("blocked user")
	ErrEmailTaken         = errors.New("email already registered")
)

// lockoutThreshold is the number of consecutive failed logins that
// locks an account for the configured window.
const lockoutThreshold = 3

type authService struct {
	userRepo      domain.UserRepository
	jwtSecret     string
	jwtExpiry     time.Duration
	lockoutWindow time.Duration
}

// NewAuthService creates the in-process identity/token issuer.
func NewAuthService(userRepo domain.UserRepository, jwtSecret string, jwtExpiry, lockoutWindow time.Duration) AuthUseCase {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiry:     jwtExpiry,
		lockoutWindow: lockoutWindow,
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("register: %w", err)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Claims:       domain.ClaimList{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Store(ctx, user); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	return util.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	now := time.Now().UTC()
	if user.Blocked(now) {
		return "", ErrUserBlocked
	}

	// An expired lock clears the failure counter before the attempt counts.
	if user.LockedUntil != nil {
		user.LockedUntil = nil
		user.FailedLogins = 0
	}

	if !util.CheckPasswordHash(password, user.PasswordHash) {
		return "", s.recordFailure(ctx, user, now)
	}

	if user.FailedLogins != 0 || user.LockedUntil != nil {
		user.FailedLogins = 0
		user.LockedUntil = nil
		user.UpdatedAt = now
		if err := s.userRepo.Update(ctx, user); err != nil {
			return "", fmt.Errorf("login: %w", err)
		}
	}

	return util.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
}

// recordFailure increments the consecutive-failure counter and locks the
// account when the threshold is reached. The attempt that triggers the
// lock already reports the account as blocked.
func (s *authService) recordFailure(ctx context.Context, user *domain.User, now time.Time) error {
	user.FailedLogins++
	user.UpdatedAt = now

	result := ErrInvalidCredentials
	if user.FailedLogins >= lockoutThreshold {
		until := now.Add(s.lockoutWindow)
		user.LockedUntil = &until
		result = ErrUserBlocked
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return result
}
