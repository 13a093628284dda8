// Package api defines transport models for the HTTP delivery layer.
package api

// ErrorResponseErrorCode classifies delivery errors for clients.
type ErrorResponseErrorCode string

const (
	// INVALIDARGUMENT marks rejected input.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// SUMMARYFAILED marks a failed call to the generation service.
	SUMMARYFAILED ErrorResponseErrorCode = "SUMMARY_FAILED"
	// EMPTYSUMMARY marks a generation call that produced no usable text.
	EMPTYSUMMARY ErrorResponseErrorCode = "EMPTY_SUMMARY"
	// INTERNAL marks unclassified failures.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the common error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// JoinRequest is the transport form of a join request.
type JoinRequest struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
	Status   string `json:"status"`
}

// Project is the transport form of a project.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Description  string        `json:"description"`
	SkillsNeeded []string      `json:"skills_needed"`
	TeamMembers  []string      `json:"team_members"`
	Author       string        `json:"author"`
	JoinRequests []JoinRequest `json:"join_requests"`
}

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	User         string   `json:"user"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	SkillsNeeded []string `json:"skills_needed"`
}

// SubmitJoinRequestRequest is the body of POST /api/projects/:id/requests.
type SubmitJoinRequestRequest struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

// ResolveJoinRequestRequest is the body of the resolve endpoint.
type ResolveJoinRequestRequest struct {
	UserName string `json:"user_name"`
	Action   string `json:"action"`
}

// GenerateSummaryRequest is the body of POST /api/summary.
type GenerateSummaryRequest struct {
	Description string `json:"description"`
}

// GenerateSummaryResponse carries the drafted summary text.
type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}
