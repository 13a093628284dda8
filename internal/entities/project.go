// Package entities contains core business entities.
package entities

// RequestStatus enumerates join request lifecycle states.
type RequestStatus string

const (
	// StatusPending marks a request awaiting an owner decision.
	StatusPending RequestStatus = "pending"
	// StatusAccepted marks an accepted request.
	StatusAccepted RequestStatus = "accepted"
	// StatusDeclined marks a declined request.
	StatusDeclined RequestStatus = "declined"
)

// RequestAction enumerates owner decisions on a join request.
type RequestAction string

const (
	// ActionAccept admits the requester to the team.
	ActionAccept RequestAction = "accept"
	// ActionDecline rejects the request without team changes.
	ActionDecline RequestAction = "decline"
)

// JoinRequest is a pending application by a user to join a project team.
type JoinRequest struct {
	ID       string
	UserName string
	Message  string
	Status   RequestStatus
}

// Project is a posted collaboration opportunity with a team.
//
// TeamMembers is semantically a set but keeps insertion order for display;
// Author is always present in it. JoinRequests keeps submission order.
type Project struct {
	ID           string
	Title        string
	Summary      string
	Description  string
	SkillsNeeded []string
	TeamMembers  []string
	Author       string
	JoinRequests []JoinRequest
}

// NewProjectData carries the caller-supplied fields for project creation.
type NewProjectData struct {
	Title        string
	Summary      string
	Description  string
	SkillsNeeded []string
}

// PendingRequests returns the requests still awaiting an owner decision.
func (p *Project) PendingRequests() []JoinRequest {
	res := make([]JoinRequest, 0, len(p.JoinRequests))
	for _, r := range p.JoinRequests {
		if r.Status == StatusPending {
			res = append(res, r)
		}
	}
	return res
}

// HasPendingRequestFrom reports whether user has an open request on the project.
func (p *Project) HasPendingRequestFrom(user string) bool {
	for _, r := range p.JoinRequests {
		if r.UserName == user && r.Status == StatusPending {
			return true
		}
	}
	return false
}

// IsMember reports whether user is part of the project team.
func (p *Project) IsMember(user string) bool {
	for _, m := range p.TeamMembers {
		if m == user {
			return true
		}
	}
	return false
}
