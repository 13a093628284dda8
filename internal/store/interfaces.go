// Package store contains store interfaces for board state backends.
package store

import (
	"context"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes project collection operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, data entities.NewProjectData, actingUser string) (*entities.Project, error)
	SubmitJoinRequest(ctx context.Context, projectID, userName, message string) (*entities.Project, error)
	ResolveJoinRequest(ctx context.Context, projectID, requestID, userName string, action entities.RequestAction) (*entities.Project, bool, error)
	Projects(ctx context.Context) ([]*entities.Project, error)
}

// UserInterface exposes the known-user roster derived from the seed.
type UserInterface interface {
	Users(ctx context.Context) ([]string, error)
}

// Store aggregates all board state interfaces.
type Store interface {
	LifecycleInterface
	ProjectInterface
	UserInterface
}
