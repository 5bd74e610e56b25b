package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/dev-rajankit/recozadmin/internal/mail"
)

// Common errors
var (
	ErrAdminExists        = errors.New("signup is disabled: an admin account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("too many attempts, try again later")
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Store is the persistence interface the service depends on
type Store interface {
	ClaimFirstAdmin(ctx context.Context, u *AdminUser) (bool, error)
	Exists(ctx context.Context) (bool, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*AdminUser, error)
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// Service handles admin authentication logic
type Service struct {
	store    Store
	mailer   mail.Mailer
	appURL   string
	tokenTTL time.Duration
	now      func() time.Time

	// credential-guessing and reset-spam protection
	loginLimiter *rate.Limiter
	resetLimiter *rate.Limiter
}

// NewService creates a new auth service
func NewService(store Store, mailer mail.Mailer, appURL string, tokenTTL time.Duration) *Service {
	return &Service{
		store:        store,
		mailer:       mailer,
		appURL:       strings.TrimRight(appURL, "/"),
		tokenTTL:     tokenTTL,
		now:          time.Now,
		loginLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
		resetLimiter: rate.NewLimiter(rate.Every(time.Minute), 5),
	}
}

// Signup claims the single admin account. It fails with ErrAdminExists once
// any admin row exists, regardless of payload.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AdminUser, error) {
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	claimed, err := s.store.ClaimFirstAdmin(ctx, u)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAdminExists
	}

	return u, nil
}

// Login verifies the admin's credentials. Unknown email and wrong password
// produce the same error.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AdminUser, error) {
	if !s.loginLimiter.Allow() {
		return nil, ErrRateLimited
	}

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.store.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// UserExists reports whether the admin account has been claimed
func (s *Service) UserExists(ctx context.Context) (bool, error) {
	return s.store.Exists(ctx)
}

// ForgotPassword issues a reset token and hands the link to the mailer. It
// succeeds even when the email matches no account, so callers cannot probe
// for the admin's address.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if !s.resetLimiter.Allow() {
		return ErrRateLimited
	}

	u, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token, tokenHash, err := newResetToken()
	if err != nil {
		return err
	}

	expiresAt := s.now().Add(s.tokenTTL)
	if err := s.store.SetResetToken(ctx, u.ID, tokenHash, expiresAt); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.appURL, token)
	if err := s.mailer.SendPasswordReset(ctx, u.Email, resetLink); err != nil {
		// the stored token is unusable if the admin never received the link
		if clearErr := s.store.ClearResetToken(ctx, u.ID); clearErr != nil {
			return fmt.Errorf("failed to clear reset token after mail failure: %w", clearErr)
		}
		return err
	}

	return nil
}

// ResetPassword redeems a reset token and replaces the password
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if req.Token == "" {
		return ErrInvalidResetToken
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}

	u, err := s.store.GetByResetToken(ctx, hashResetToken(req.Token), s.now())
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.UpdatePassword(ctx, u.ID, string(hash))
}

// UpdatePassword changes the password after verifying the current one
func (s *Service) UpdatePassword(ctx context.Context, req *UpdatePasswordRequest) error {
	if req.Email == "" || req.CurrentPassword == "" {
		return fmt.Errorf("%w: email and current password are required", ErrInvalidInput)
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	u, err := s.store.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.UpdatePassword(ctx, u.ID, string(hash))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) (string, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
