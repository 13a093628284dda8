// Package memory implements the board store in process memory.
//
// The collection is held as an immutable snapshot: every mutation builds a
// fresh slice and reconstructs only the affected project, so untouched
// projects keep pointer identity across snapshots and snapshots handed out
// to readers are never written again.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Memory holds the authoritative project collection for the process lifetime.
type Memory struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	projects []*entities.Project

	users []string
}

// New creates a memory store seeded with an initial project collection.
// The seed is deep-copied so callers keep ownership of their fixture; the
// known-user roster is derived from it once.
func New(log *zap.SugaredLogger, seed []*entities.Project) *Memory {
	projects := copySeed(seed)
	return &Memory{
		log:      log.Named("store.memory"),
		projects: projects,
		users:    deriveUsers(projects),
	}
}

// OnStart implements the lifecycle hook; memory needs no setup.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop implements the lifecycle hook; state dies with the process.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// CreateProject allocates a fresh project authored by actingUser and prepends
// it to the collection (newest first). Text content is caller-validated; the
// store only checks structural shape.
func (m *Memory) CreateProject(_ context.Context, data entities.NewProjectData, actingUser string) (*entities.Project, error) {
	if actingUser == "" {
		return nil, fmt.Errorf("%w: acting user is required", entities.ErrInvalidArgument)
	}

	p := &entities.Project{
		ID:           uuid.NewString(),
		Title:        data.Title,
		Summary:      data.Summary,
		Description:  data.Description,
		SkillsNeeded: append([]string(nil), data.SkillsNeeded...),
		TeamMembers:  []string{actingUser},
		Author:       actingUser,
		JoinRequests: []entities.JoinRequest{},
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]*entities.Project, 0, len(m.projects)+1)
	next = append(next, p)
	next = append(next, m.projects...)
	m.projects = next

	m.log.Infow("project created", "project_id", p.ID, "author", actingUser)
	return p, nil
}

// SubmitJoinRequest appends a pending request to the target project.
//
// The store is deliberately permissive about duplicate pending requests and
// requests from existing members: the surrounding UI hides the action in
// those cases and the store does not de-duplicate on its own.
func (m *Memory) SubmitJoinRequest(_ context.Context, projectID, userName, message string) (*entities.Project, error) {
	if userName == "" {
		return nil, fmt.Errorf("%w: user name is required", entities.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(projectID)
	if idx < 0 {
		return nil, entities.ErrProjectNotFound
	}

	cur := m.projects[idx]
	updated := *cur
	updated.JoinRequests = append(
		append([]entities.JoinRequest(nil), cur.JoinRequests...),
		entities.JoinRequest{
			ID:       uuid.NewString(),
			UserName: userName,
			Message:  message,
			Status:   entities.StatusPending,
		},
	)
	m.swap(idx, &updated)

	m.log.Infow("join request submitted", "project_id", projectID, "user", userName)
	return &updated, nil
}

// ResolveJoinRequest removes the named request and, on accept, adds the
// supplied userName to the team. A missing project or request is a lenient
// no-op rather than an error, which keeps stale references (a second click
// on an already-resolved request) harmless. The returned bool reports
// whether a request was actually removed.
//
// userName is trusted as supplied by the caller and is not cross-checked
// against the removed request's UserName.
func (m *Memory) ResolveJoinRequest(_ context.Context, projectID, requestID, userName string, action entities.RequestAction) (*entities.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(projectID)
	if idx < 0 {
		m.log.Debugw("resolve on unknown project", "project_id", projectID)
		return nil, false, nil
	}

	cur := m.projects[idx]
	reqIdx := -1
	for i, r := range cur.JoinRequests {
		if r.ID == requestID {
			reqIdx = i
			break
		}
	}
	if reqIdx < 0 {
		return cur, false, nil
	}

	updated := *cur
	remaining := make([]entities.JoinRequest, 0, len(cur.JoinRequests)-1)
	remaining = append(remaining, cur.JoinRequests[:reqIdx]...)
	remaining = append(remaining, cur.JoinRequests[reqIdx+1:]...)
	updated.JoinRequests = remaining

	if action == entities.ActionAccept {
		updated.TeamMembers = append(
			append([]string(nil), cur.TeamMembers...),
			userName,
		)
	}
	m.swap(idx, &updated)

	m.log.Infow("join request resolved",
		"project_id", projectID,
		"request_id", requestID,
		"action", string(action),
	)
	return &updated, true, nil
}

// Projects returns the current snapshot, newest first. The snapshot is
// immutable and safe to read without further locking.
func (m *Memory) Projects(_ context.Context) ([]*entities.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.projects, nil
}

// Users returns the known-user roster derived from the seed.
func (m *Memory) Users(_ context.Context) ([]string, error) {
	return append([]string(nil), m.users...), nil
}

// indexOf must be called with the mutex held.
func (m *Memory) indexOf(projectID string) int {
	for i, p := range m.projects {
		if p.ID == projectID {
			return i
		}
	}
	return -1
}

// swap publishes a new snapshot replacing the project at idx. Must be called
// with the mutex held.
func (m *Memory) swap(idx int, p *entities.Project) {
	next := append([]*entities.Project(nil), m.projects...)
	next[idx] = p
	m.projects = next
}

func copySeed(seed []*entities.Project) []*entities.Project {
	projects := make([]*entities.Project, 0, len(seed))
	for _, src := range seed {
		p := *src
		p.SkillsNeeded = append([]string(nil), src.SkillsNeeded...)
		p.TeamMembers = append([]string(nil), src.TeamMembers...)
		p.JoinRequests = append([]entities.JoinRequest(nil), src.JoinRequests...)
		projects = append(projects, &p)
	}
	return projects
}

// deriveUsers collects every author, team member and requester mentioned in
// the seed, deduplicated, in first-seen order.
func deriveUsers(projects []*entities.Project) []string {
	seen := make(map[string]struct{})
	users := make([]string, 0)
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		users = append(users, name)
	}
	for _, p := range projects {
		add(p.Author)
		for _, member := range p.TeamMembers {
			add(member)
		}
		for _, r := range p.JoinRequests {
			add(r.UserName)
		}
	}
	return users
}
