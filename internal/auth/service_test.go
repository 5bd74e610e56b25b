package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	admin *AdminUser
}

func (f *fakeStore) ClaimFirstAdmin(_ context.Context, u *AdminUser) (bool, error) {
	if f.admin != nil {
		return false, nil
	}
	copied := *u
	f.admin = &copied
	return true, nil
}

func (f *fakeStore) Exists(_ context.Context) (bool, error) {
	return f.admin != nil, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*AdminUser, error) {
	if f.admin == nil || f.admin.Email != email {
		return nil, nil
	}
	copied := *f.admin
	return &copied, nil
}

func (f *fakeStore) GetByResetToken(_ context.Context, tokenHash string, now time.Time) (*AdminUser, error) {
	if f.admin == nil || f.admin.ResetTokenHash == nil || *f.admin.ResetTokenHash != tokenHash {
		return nil, nil
	}
	if f.admin.ResetTokenExpiresAt == nil || !f.admin.ResetTokenExpiresAt.After(now) {
		return nil, nil
	}
	copied := *f.admin
	return &copied, nil
}

func (f *fakeStore) SetResetToken(_ context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	f.admin.ResetTokenHash = &tokenHash
	f.admin.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (f *fakeStore) ClearResetToken(_ context.Context, id uuid.UUID) error {
	f.admin.ResetTokenHash = nil
	f.admin.ResetTokenExpiresAt = nil
	return nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.admin.PasswordHash = passwordHash
	f.admin.ResetTokenHash = nil
	f.admin.ResetTokenExpiresAt = nil
	return nil
}

type fakeMailer struct {
	to   string
	link string
	sent int
	fail error
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	if f.fail != nil {
		return f.fail
	}
	f.to = to
	f.link = resetLink
	f.sent++
	return nil
}

func newTestService(store Store, mailer *fakeMailer) *Service {
	svc := NewService(store, mailer, "http://localhost:8080", time.Hour)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func signedUpService(t *testing.T) (*Service, *fakeStore, *fakeMailer) {
	t.Helper()
	store := &fakeStore{}
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Email:    "admin@recoz.in",
		Password: "secret123",
	})
	require.NoError(t, err)
	return svc, store, mailer
}

func TestSignup(t *testing.T) {
	t.Run("first signup claims the account", func(t *testing.T) {
		store := &fakeStore{}
		svc := newTestService(store, &fakeMailer{})

		u, err := svc.Signup(context.Background(), &SignupRequest{
			Email:    "Admin@Recoz.IN",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin@recoz.in", u.Email, "email is normalized")
		assert.NotEqual(t, "secret123", u.PasswordHash, "password is stored hashed")
	})

	t.Run("second signup always fails", func(t *testing.T) {
		svc, _, _ := signedUpService(t)

		_, err := svc.Signup(context.Background(), &SignupRequest{
			Email:    "other@recoz.in",
			Password: "different456",
		})
		assert.ErrorIs(t, err, ErrAdminExists)
	})

	t.Run("validation failures", func(t *testing.T) {
		store := &fakeStore{}
		svc := newTestService(store, &fakeMailer{})

		_, err := svc.Signup(context.Background(), &SignupRequest{Email: "not-an-email", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Signup(context.Background(), &SignupRequest{Email: "admin@recoz.in", Password: "short"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	svc, _, _ := signedUpService(t)

	t.Run("correct credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "admin@recoz.in",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin@recoz.in", u.Email)
	})

	t.Run("wrong password and unknown email yield the same error", func(t *testing.T) {
		_, errWrongPassword := svc.Login(context.Background(), &LoginRequest{
			Email:    "admin@recoz.in",
			Password: "wrongpass",
		})
		_, errUnknownEmail := svc.Login(context.Background(), &LoginRequest{
			Email:    "nobody@recoz.in",
			Password: "secret123",
		})

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@recoz.in"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLoginRateLimit(t *testing.T) {
	svc, _, _ := signedUpService(t)

	var limited bool
	for i := 0; i < 20; i++ {
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "admin@recoz.in",
			Password: "wrongpass",
		})
		if errors.Is(err, ErrRateLimited) {
			limited = true
			break
		}
	}
	assert.True(t, limited, "rapid login attempts should hit the rate limit")
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, store, mailer := signedUpService(t)

	t.Run("unknown email succeeds silently", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@recoz.in"))
		assert.Zero(t, mailer.sent)
		assert.Nil(t, store.admin.ResetTokenHash)
	})

	t.Run("known email stores hashed token and mails the link", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(context.Background(), "admin@recoz.in"))
		require.Equal(t, 1, mailer.sent)
		assert.Equal(t, "admin@recoz.in", mailer.to)

		token := mailer.link[strings.LastIndex(mailer.link, "/")+1:]
		require.NotEmpty(t, token)
		require.NotNil(t, store.admin.ResetTokenHash)
		assert.NotEqual(t, token, *store.admin.ResetTokenHash, "raw token never stored")
		assert.Equal(t, hashResetToken(token), *store.admin.ResetTokenHash)
	})

	t.Run("reset with the mailed token", func(t *testing.T) {
		token := mailer.link[strings.LastIndex(mailer.link, "/")+1:]

		err := svc.ResetPassword(context.Background(), &ResetPasswordRequest{
			Token:    token,
			Password: "newsecret456",
		})
		require.NoError(t, err)
		assert.Nil(t, store.admin.ResetTokenHash, "token is single use")

		_, err = svc.Login(context.Background(), &LoginRequest{
			Email:    "admin@recoz.in",
			Password: "newsecret456",
		})
		assert.NoError(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), &ResetPasswordRequest{
			Token:    "bogus",
			Password: "newsecret456",
		})
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(context.Background(), "admin@recoz.in"))
		token := mailer.link[strings.LastIndex(mailer.link, "/")+1:]

		// jump past the one hour TTL
		svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 1, 0, time.UTC) }

		err := svc.ResetPassword(context.Background(), &ResetPasswordRequest{
			Token:    token,
			Password: "newsecret789",
		})
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("mail failure clears the stored token", func(t *testing.T) {
		svc, store, mailer := signedUpService(t)
		mailer.fail = errors.New("smtp unreachable")

		err := svc.ForgotPassword(context.Background(), "admin@recoz.in")
		assert.Error(t, err)
		assert.Nil(t, store.admin.ResetTokenHash)
		assert.Nil(t, store.admin.ResetTokenExpiresAt)
	})
}

func TestUpdatePassword(t *testing.T) {
	svc, _, _ := signedUpService(t)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), &UpdatePasswordRequest{
			Email:           "admin@recoz.in",
			CurrentPassword: "wrongpass",
			NewPassword:     "newsecret456",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("correct current password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), &UpdatePasswordRequest{
			Email:           "admin@recoz.in",
			CurrentPassword: "secret123",
			NewPassword:     "newsecret456",
		})
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), &LoginRequest{
			Email:    "admin@recoz.in",
			Password: "newsecret456",
		})
		assert.NoError(t, err)
	})

	t.Run("short new password", func(t *testing.T) {
		err := svc.UpdatePassword(context.Background(), &UpdatePasswordRequest{
			Email:           "admin@recoz.in",
			CurrentPassword: "newsecret456",
			NewPassword:     "tiny",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUserExists(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeMailer{})

	exists, err := svc.UserExists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Signup(context.Background(), &SignupRequest{Email: "admin@recoz.in", Password: "secret123"})
	require.NoError(t, err)

	exists, err = svc.UserExists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResetTokenGeneration(t *testing.T) {
	token, hash, err := newResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 64, "32 random bytes hex encoded")
	assert.NotEqual(t, token, hash)
	assert.Equal(t, hashResetToken(token), hash)

	other, _, err := newResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
