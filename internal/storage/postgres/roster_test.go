package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
	"github.com/cory-johannsen/tactics/internal/pkg/idgen"
	"github.com/cory-johannsen/tactics/internal/storage/postgres"
	"github.com/cory-johannsen/tactics/internal/testutil"
)

func uniqueTeam(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func makeTeam(t *testing.T, teamID string) tactical.TeamResult {
	t.Helper()
	drafts := []*character.Draft{
		{
			ID:   "leader",
			Name: "Iris",
			Attributes: map[string]int{
				"body": 3, "coordination": 2, "reflexes": 2, "determination": 4,
				"reasoning": 3, "knowledge": 3, "intuition": 2, "charisma": 4,
			},
			Skills:         character.SkillMap{"lideranca": 3, "laminas": 2},
			Virtues:        map[string]int{character.VirtueCourage: 2},
			StartingVirtue: character.VirtueCourage,
		},
		{ID: "scout", Name: "Teo", Skills: character.SkillMap{"tiro": 1}},
	}
	conv := tactical.NewConverter(idgen.NewSequential(teamID), nil)
	res := conv.ConvertTeam(drafts, "leader", teamID)
	require.NotNil(t, res.Commander)
	require.NotEmpty(t, res.Cards)
	return res
}

func TestRosterRepository_SaveAndLoad(t *testing.T) {
	repo := postgres.NewRosterRepository(testutil.NewPool(t))
	ctx := context.Background()
	team := makeTeam(t, uniqueTeam("blue"))

	require.NoError(t, repo.SaveTeam(ctx, team))

	loaded, err := repo.LoadTeam(ctx, team.TeamID)
	require.NoError(t, err)
	assert.Equal(t, team.TeamID, loaded.TeamID)
	assert.Equal(t, team.Units, loaded.Units)
	assert.Equal(t, team.Warnings, loaded.Warnings)
	require.Len(t, loaded.Cards, len(team.Cards))
	for i := range team.Cards {
		assert.Equal(t, team.Cards[i].ID, loaded.Cards[i].ID)
		assert.Equal(t, team.Cards[i].Effects, loaded.Cards[i].Effects)
	}
	require.NotNil(t, loaded.Commander)
	assert.Equal(t, team.Commander.ID, loaded.Commander.ID)
	assert.Equal(t, *team.Commander.Command, *loaded.Commander.Command)
}

func TestRosterRepository_SaveReplacesExisting(t *testing.T) {
	repo := postgres.NewRosterRepository(testutil.NewPool(t))
	ctx := context.Background()
	teamID := uniqueTeam("red")

	first := makeTeam(t, teamID)
	require.NoError(t, repo.SaveTeam(ctx, first))

	second := first
	second.Units = first.Units[:1]
	second.Cards = []cards.CombatCard{}
	second.Warnings = nil
	require.NoError(t, repo.SaveTeam(ctx, second))

	loaded, err := repo.LoadTeam(ctx, teamID)
	require.NoError(t, err)
	assert.Len(t, loaded.Units, 1)
	assert.Empty(t, loaded.Cards)
	assert.Empty(t, loaded.Warnings)
}

func TestRosterRepository_ResaveKeepsCreatedAt(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewRosterRepository(pool)
	ctx := context.Background()
	team := makeTeam(t, uniqueTeam("amber"))

	stamps := func() (time.Time, time.Time) {
		var created, updated time.Time
		require.NoError(t, pool.DB().QueryRow(ctx,
			`SELECT created_at, updated_at FROM rosters WHERE team_id = $1`, team.TeamID,
		).Scan(&created, &updated))
		return created, updated
	}

	require.NoError(t, repo.SaveTeam(ctx, team))
	created1, updated1 := stamps()

	require.NoError(t, repo.SaveTeam(ctx, team))
	created2, updated2 := stamps()

	assert.True(t, created1.Equal(created2), "created_at changed: %s -> %s", created1, created2)
	assert.False(t, updated2.Before(updated1))

	loaded, err := repo.LoadTeam(ctx, team.TeamID)
	require.NoError(t, err)
	assert.Len(t, loaded.Units, len(team.Units))
	assert.Len(t, loaded.Cards, len(team.Cards))
}

func TestPool_Health(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()

	require.NoError(t, pool.Health(ctx, time.Second))

	pool.Close()
	assert.Error(t, pool.Health(ctx, time.Second))
}

func TestRosterRepository_LoadMissing(t *testing.T) {
	repo := postgres.NewRosterRepository(testutil.NewPool(t))
	_, err := repo.LoadTeam(context.Background(), "no-such-team")
	assert.ErrorIs(t, err, postgres.ErrRosterNotFound)
}

func TestRosterRepository_ListAndDelete(t *testing.T) {
	repo := postgres.NewRosterRepository(testutil.NewPool(t))
	ctx := context.Background()
	team := makeTeam(t, uniqueTeam("green"))
	require.NoError(t, repo.SaveTeam(ctx, team))

	ids, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, team.TeamID)

	require.NoError(t, repo.DeleteTeam(ctx, team.TeamID))
	assert.ErrorIs(t, repo.DeleteTeam(ctx, team.TeamID), postgres.ErrRosterNotFound)

	_, err = repo.LoadTeam(ctx, team.TeamID)
	assert.ErrorIs(t, err, postgres.ErrRosterNotFound)
}

func TestRosterRepository_SaveRejectsEmptyTeamID(t *testing.T) {
	repo := postgres.NewRosterRepository(nil)
	err := repo.SaveTeam(context.Background(), tactical.TeamResult{})
	assert.Error(t, err)
}
