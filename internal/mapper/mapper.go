// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/pavankumarofficial1231/College-Connect/internal/api"
	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// ToAPIJoinRequest maps entities.JoinRequest to transport model.
func ToAPIJoinRequest(r entities.JoinRequest) api.JoinRequest {
	return api.JoinRequest{
		ID:       r.ID,
		UserName: r.UserName,
		Message:  r.Message,
		Status:   string(r.Status),
	}
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	skills := make([]string, len(p.SkillsNeeded))
	copy(skills, p.SkillsNeeded)

	members := make([]string, len(p.TeamMembers))
	copy(members, p.TeamMembers)

	requests := make([]api.JoinRequest, 0, len(p.JoinRequests))
	for _, r := range p.JoinRequests {
		requests = append(requests, ToAPIJoinRequest(r))
	}

	return api.Project{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      p.Summary,
		Description:  p.Description,
		SkillsNeeded: skills,
		TeamMembers:  members,
		Author:       p.Author,
		JoinRequests: requests,
	}
}

// ToAPIProjectList maps a snapshot slice to transport models.
func ToAPIProjectList(list []*entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(*p))
	}
	return res
}

// FromAPINewProject builds entities.NewProjectData from the create body.
func FromAPINewProject(src api.CreateProjectRequest) entities.NewProjectData {
	return entities.NewProjectData{
		Title:        src.Title,
		Summary:      src.Summary,
		Description:  src.Description,
		SkillsNeeded: src.SkillsNeeded,
	}
}
