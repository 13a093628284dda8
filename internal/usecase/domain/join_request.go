// Package domain contains application usecases orchestrating board logic by join request.
package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// minJoinMessageLen is the minimum trimmed length of a join request message.
const minJoinMessageLen = 10

// SubmitJoinRequest validates the message and files a pending request on the
// project. The length rule lives here, not in the store.
func (u *Usecase) SubmitJoinRequest(ctx context.Context, projectID, userName, message string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userName == "" {
		return nil, fmt.Errorf("%w: project id and user are required", entities.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(strings.TrimSpace(message)) < minJoinMessageLen {
		u.log.Errorw("failed to submit join request: message too short", "project_id", projectID, "user", userName)
		return nil, fmt.Errorf("%w: message must be at least %d characters", entities.ErrInvalidArgument, minJoinMessageLen)
	}

	return u.store.SubmitJoinRequest(ctx, projectID, userName, message)
}

// ResolveJoinRequest applies an owner decision. Unknown project or request
// ids resolve leniently to a no-op in the store.
func (u *Usecase) ResolveJoinRequest(ctx context.Context, projectID, requestID, userName string, action entities.RequestAction) (*entities.Project, bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || requestID == "" || userName == "" {
		return nil, false, fmt.Errorf("%w: missing required fields", entities.ErrInvalidArgument)
	}
	if action != entities.ActionAccept && action != entities.ActionDecline {
		return nil, false, fmt.Errorf("%w: action must be accept or decline", entities.ErrInvalidArgument)
	}

	return u.store.ResolveJoinRequest(ctx, projectID, requestID, userName, action)
}
