// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"member-admin/internal/auth"
	"member-admin/internal/entities"
	"member-admin/internal/repository"

	"go.uber.org/zap"
)

// TokenService signs and verifies session tokens.
type TokenService interface {
	Issue(userID, email string) (string, time.Time, error)
	Parse(token string) (*auth.Claims, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	tokens  TokenService
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tokens TokenService,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		tokens:  tokens,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// downstream marks a store or auth-provider failure unless it already carries a
// classified error.
func downstream(err error) error {
	switch {
	case errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrUnauthenticated),
		errors.Is(err, entities.ErrForbidden),
		errors.Is(err, entities.ErrDownstream):
		return err
	}
	return fmt.Errorf("%w: %w", entities.ErrDownstream, err)
}
