package memory

import (
	"context"
	"testing"

	"github.com/pavankumarofficial1231/College-Connect/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixture() []*entities.Project {
	return []*entities.Project{
		{
			ID:           "p-jane",
			Title:        "Dorm Room Recipe Share",
			Summary:      "Budget-friendly recipes for dorm kitchens.",
			Description:  "Recipes, shopping lists and a pantry search.",
			SkillsNeeded: []string{"Next.js"},
			TeamMembers:  []string{"Jane"},
			Author:       "Jane",
			JoinRequests: []entities.JoinRequest{
				{ID: "r-1", UserName: "Oscar", Message: "Big fan of cooking and budget meals.", Status: entities.StatusPending},
				{ID: "r-2", UserName: "Peggy", Message: "Frontend help with Next.js and Tailwind.", Status: entities.StatusPending},
			},
		},
		{
			ID:           "p-ivan",
			Title:        "Peer Tutor Marketplace",
			Summary:      "Connecting students with peer tutors.",
			Description:  "Profiles, booking and reviews.",
			SkillsNeeded: []string{"Django"},
			TeamMembers:  []string{"Ivan", "Judy"},
			Author:       "Ivan",
			JoinRequests: []entities.JoinRequest{},
		},
	}
}

func newStore(t *testing.T) *Memory {
	t.Helper()
	return New(zap.NewNop().Sugar(), fixture())
}

func TestMemory_CreateProjectPrepends(t *testing.T) {
	m := newStore(t)
	ctx := context.Background()

	before, err := m.Projects(ctx)
	require.NoError(t, err)

	p, err := m.CreateProject(ctx, entities.NewProjectData{
		Title:       "AR Campus Tour",
		Summary:     "Historical AR overlays around campus.",
		Description: "ARKit wayfinding with 3D landmarks.",
	}, "Diana")
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "Diana", p.Author)
	require.Equal(t, []string{"Diana"}, p.TeamMembers)
	require.Empty(t, p.JoinRequests)

	after, err := m.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	require.Same(t, p, after[0])
}

func TestMemory_CreateProjectRequiresActingUser(t *testing.T) {
	m := newStore(t)

	_, err := m.CreateProject(context.Background(), entities.NewProjectData{Title: "x"}, "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestMemory_SubmitJoinRequestAddsPending(t *testing.T) {
	m := newStore(t)
	ctx := context.Background()

	before, err := m.Projects(ctx)
	require.NoError(t, err)

	p, err := m.SubmitJoinRequest(ctx, "p-ivan", "Trent", "I can help with the booking flow and payments.")
	require.NoError(t, err)
	require.Len(t, p.JoinRequests, 1)
	require.Equal(t, "Trent", p.JoinRequests[0].UserName)
	require.Equal(t, entities.StatusPending, p.JoinRequests[0].Status)
	require.NotEmpty(t, p.JoinRequests[0].ID)

	after, err := m.Projects(ctx)
	require.NoError(t, err)
	require.Same(t, before[0], after[0], "untouched project must keep pointer identity")
	require.NotSame(t, before[1], after[1])
	require.Empty(t, before[1].JoinRequests, "old snapshot must be unchanged")
}

func TestMemory_SubmitJoinRequestUnknownProject(t *testing.T) {
	m := newStore(t)

	_, err := m.SubmitJoinRequest(context.Background(), "nope", "Trent", "A long enough message here.")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

// The store does not de-duplicate pending requests; that guard lives in the
// UI path. Invoked directly it will happily file a second request.
func TestMemory_SubmitJoinRequestPermitsDuplicates(t *testing.T) {
	m := newStore(t)
	ctx := context.Background()

	_, err := m.SubmitJoinRequest(ctx, "p-ivan", "Trent", "First request with enough text.")
	require.NoError(t, err)
	p, err := m.SubmitJoinRequest(ctx, "p-ivan", "Trent", "Second request with enough text.")
	require.NoError(t, err)
	require.Len(t, p.JoinRequests, 2)
}

func TestMemory_ResolveAcceptAddsMemberOnce(t *testing.T) {
	m := newStore(t)
	ctx := context.Background()

	p, resolved, err := m.ResolveJoinRequest(ctx, "p-jane", "r-1", "Oscar", entities.ActionAccept)
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, []string{"Jane", "Oscar"}, p.TeamMembers)
	require.Len(t, p.JoinRequests, 1)
	require.Equal(t, "r-2", p.JoinRequests[0].ID)

	// second resolve of the same id is a no-op, not an error
	p, resolved, err = m.ResolveJoinRequest(ctx, "p-jane", "r-1", "Oscar", entities.ActionAccept)
	require.NoError(t, err)
	require.False(t, resolved)
	require.Equal(t, []string{"Jane", "Oscar"}, p.TeamMembers)
}

func TestMemory_ResolveDeclineKeepsTeam(t *testing.T) {
	m := newStore(t)

	p, resolved, err := m.ResolveJoinRequest(context.Background(), "p-jane", "r-2", "Peggy", entities.ActionDecline)
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, []string{"Jane"}, p.TeamMembers)
	require.Len(t, p.JoinRequests, 1)
}

func TestMemory_ResolveUnknownProjectIsNoop(t *testing.T) {
	m := newStore(t)

	p, resolved, err := m.ResolveJoinRequest(context.Background(), "nope", "r-1", "Oscar", entities.ActionAccept)
	require.NoError(t, err)
	require.Nil(t, p)
	require.False(t, resolved)
}

func TestMemory_SeedIsCopied(t *testing.T) {
	seed := fixture()
	m := New(zap.NewNop().Sugar(), seed)

	seed[0].TeamMembers[0] = "Mallory"
	seed[0].JoinRequests[0].UserName = "Mallory"

	projects, err := m.Projects(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Jane", projects[0].TeamMembers[0])
	require.Equal(t, "Oscar", projects[0].JoinRequests[0].UserName)
}

func TestMemory_UsersDerivedFromSeed(t *testing.T) {
	m := newStore(t)

	users, err := m.Users(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Jane", "Oscar", "Peggy", "Ivan", "Judy"}, users)
}
