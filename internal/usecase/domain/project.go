// Package domain contains application usecases orchestrating board logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
	"github.com/pavankumarofficial1231/College-Connect/internal/view"
)

// CreateProject validates creation input and posts a new project authored by
// actingUser. Skills may be empty; title, summary and description may not.
func (u *Usecase) CreateProject(ctx context.Context, data entities.NewProjectData, actingUser string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(actingUser) == "" {
		u.log.Errorw("failed to create project: missing acting user")
		return nil, fmt.Errorf("%w: user is required", entities.ErrInvalidArgument)
	}
	if strings.TrimSpace(data.Title) == "" ||
		strings.TrimSpace(data.Summary) == "" ||
		strings.TrimSpace(data.Description) == "" {
		u.log.Errorw("failed to create project: missing required fields")
		return nil, fmt.Errorf("%w: title, summary and description are required", entities.ErrInvalidArgument)
	}

	p, err := u.store.CreateProject(ctx, data, actingUser)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project posted", "project_id", p.ID, "author", actingUser)
	return p, nil
}

// ListProjects returns the snapshot narrowed by the ownership filter and the
// text search, in collection order (newest first).
func (u *Usecase) ListProjects(ctx context.Context, query, activeUser string, notificationsOnly bool) ([]*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if notificationsOnly && activeUser == "" {
		return nil, fmt.Errorf("%w: user is required for the notification filter", entities.ErrInvalidArgument)
	}

	projects, err := u.store.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return view.Filter(projects, query, activeUser, notificationsOnly), nil
}
