// Package usecase exposes the application layer to delivery adapters.
package usecase

import (
	"context"
	"time"

	"member-admin/internal/repository"
	"member-admin/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SessionUsecaseInterface
	AccountUsecaseInterface
	MemberUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tokens domain.TokenService,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, timeout)
}
