package usecase

import (
	"context"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// ProjectUsecaseInterface abstracts project operations for the delivery layer.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, data entities.NewProjectData, actingUser string) (*entities.Project, error)
	ListProjects(ctx context.Context, query, activeUser string, notificationsOnly bool) ([]*entities.Project, error)
}

// JoinRequestUsecaseInterface abstracts join request operations.
type JoinRequestUsecaseInterface interface {
	SubmitJoinRequest(ctx context.Context, projectID, userName, message string) (*entities.Project, error)
	ResolveJoinRequest(ctx context.Context, projectID, requestID, userName string, action entities.RequestAction) (*entities.Project, bool, error)
}

// UserUsecaseInterface abstracts roster and notification reads.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]string, error)
	NotificationCount(ctx context.Context, activeUser string) (int, error)
}

// SummaryUsecaseInterface abstracts summary drafting.
type SummaryUsecaseInterface interface {
	GenerateSummary(ctx context.Context, description string) (string, error)
}
