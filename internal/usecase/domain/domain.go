package domain

import (
	"context"
	"time"

	"github.com/pavankumarofficial1231/College-Connect/internal/store"

	"go.uber.org/zap"
)

// SummaryDrafter produces a one-sentence summary from a project description.
type SummaryDrafter interface {
	Generate(ctx context.Context, description string) (string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	store   store.Store
	drafter SummaryDrafter
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	st store.Store,
	drafter SummaryDrafter,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		store:   st,
		drafter: drafter,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
