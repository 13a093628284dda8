package usecase

import (
	"context"
	"time"

	"github.com/pavankumarofficial1231/College-Connect/internal/store"
	"github.com/pavankumarofficial1231/College-Connect/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	JoinRequestUsecaseInterface
	UserUsecaseInterface
	SummaryUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, st store.Store, drafter domain.SummaryDrafter, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, st, drafter, timeout)
}
