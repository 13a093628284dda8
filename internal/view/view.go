// Package view derives display projections from a board snapshot.
//
// Everything here is a pure function of the snapshot plus ephemeral view
// inputs (search text, active user, filter toggle); none of that state
// belongs in the store.
package view

import (
	"strings"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"
)

// Filter narrows a snapshot for display. With ownedWithPending set it first
// restricts to projects authored by activeUser that have pending requests,
// then applies a case-insensitive substring search over title or summary.
// An empty query passes through. Order is preserved; filters only remove.
func Filter(projects []*entities.Project, query, activeUser string, ownedWithPending bool) []*entities.Project {
	res := projects

	if ownedWithPending {
		res = keep(res, func(p *entities.Project) bool {
			return p.Author == activeUser && len(p.PendingRequests()) > 0
		})
	}

	if query != "" {
		q := strings.ToLower(query)
		res = keep(res, func(p *entities.Project) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Summary), q)
		})
	}

	return res
}

// NotificationCount sums pending join requests across projects authored by
// activeUser. Resolution always removes requests, so live requests are
// pending by construction; the status check stays anyway so the count holds
// if other statuses ever remain in the collection.
func NotificationCount(projects []*entities.Project, activeUser string) int {
	count := 0
	for _, p := range projects {
		if p.Author != activeUser {
			continue
		}
		for _, r := range p.JoinRequests {
			if r.Status == entities.StatusPending {
				count++
			}
		}
	}
	return count
}

func keep(projects []*entities.Project, pred func(*entities.Project) bool) []*entities.Project {
	res := make([]*entities.Project, 0, len(projects))
	for _, p := range projects {
		if pred(p) {
			res = append(res, p)
		}
	}
	return res
}
