package provider

import (
	"context"
	"log/slog"

	"github.com/mmynk/splitbeam/internal/middleware"
	"github.com/mmynk/splitbeam/internal/models"
)

// AuthService is a stand-in for sign-in. Credentials are logged (password
// masked) and never checked; every call resolves to the current user.
type AuthService struct {
	*core
}

// SignInEmail returns the current user.
func (s *AuthService) SignInEmail(ctx context.Context, email, password string) (models.User, error) {
	return middleware.Observe(ctx, "auth", "sign_in_email", func(ctx context.Context) (models.User, error) {
		masked := ""
		if password != "" {
			masked = "***"
		}
		slog.Info("SignInEmail request", "email", email, "password", masked)
		return s.store.Snapshot().CurrentUser, nil
	})
}

// SignInSocial returns the current user.
func (s *AuthService) SignInSocial(ctx context.Context, provider string) (models.User, error) {
	return middleware.Observe(ctx, "auth", "sign_in_social", func(ctx context.Context) (models.User, error) {
		slog.Info("SignInSocial request", "provider", provider)
		return s.store.Snapshot().CurrentUser, nil
	})
}

// SignOut only logs.
func (s *AuthService) SignOut(ctx context.Context) error {
	return middleware.ObserveErr(ctx, "auth", "sign_out", func(ctx context.Context) error {
		slog.Info("SignOut request")
		return nil
	})
}

// CurrentUser returns the signed-in user.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, error) {
	return middleware.Observe(ctx, "auth", "current_user", func(ctx context.Context) (models.User, error) {
		return s.store.Snapshot().CurrentUser, nil
	})
}
