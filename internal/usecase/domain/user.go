// Package domain contains application usecases orchestrating board logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
	"github.com/pavankumarofficial1231/College-Connect/internal/view"
)

// Users returns the known-user roster for the active-user selector.
func (u *Usecase) Users(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.store.Users(ctx)
}

// NotificationCount returns pending join requests across projects authored
// by activeUser.
func (u *Usecase) NotificationCount(ctx context.Context, activeUser string) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if activeUser == "" {
		return 0, fmt.Errorf("%w: user is required", entities.ErrInvalidArgument)
	}

	projects, err := u.store.Projects(ctx)
	if err != nil {
		return 0, err
	}
	return view.NotificationCount(projects, activeUser), nil
}
