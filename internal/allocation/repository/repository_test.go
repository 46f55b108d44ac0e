package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/judging_rounds/internal/allocation/allocator"
	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/testutil"
)

func pairsOf(t *testing.T, repo Repository, roundID string) []allocator.Pair {
	t.Helper()
	rows, err := repo.ListByRound(context.Background(), roundID)
	require.NoError(t, err)

	pairs := make([]allocator.Pair, 0, len(rows))
	for _, a := range rows {
		pairs = append(pairs, allocator.Pair{TeamID: a.TeamID, JudgeID: a.JudgeID})
	}
	return pairs
}

func TestRepository_ListParticipatingTeamIDs(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedRound(t, db, "r2", 2, 3)
	for _, id := range []string{"t3", "t1", "t2"} {
		testutil.SeedTeam(t, db, id)
	}
	testutil.SeedParticipation(t, db, "r1", "t3", true)
	testutil.SeedParticipation(t, db, "r1", "t1", true)
	testutil.SeedParticipation(t, db, "r1", "t2", false)
	testutil.SeedParticipation(t, db, "r2", "t2", true)

	ids, err := repo.ListParticipatingTeamIDs(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, ids)
}

func TestRepository_ListJudgeIDs(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedUser(t, db, "j2", "judge")
	testutil.SeedUser(t, db, "admin", "admin")
	testutil.SeedUser(t, db, "j1", "judge")

	ids, err := repo.ListJudgeIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"j1", "j2"}, ids)
}

func TestRepository_ReplaceAllocations(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedRound(t, db, "r2", 2, 3)
	testutil.SeedTeam(t, db, "t1")
	testutil.SeedTeam(t, db, "t2")
	testutil.SeedUser(t, db, "j1", "judge")
	testutil.SeedUser(t, db, "j2", "judge")
	testutil.SeedCriterion(t, db, "c1", 10)

	old := testutil.SeedAllocation(t, db, "r1", "t1", "j1")
	testutil.SeedScore(t, db, old, "c1", 7, 10)
	testutil.SeedAllocation(t, db, "r2", "t2", "j2")

	want := []allocator.Pair{
		{TeamID: "t1", JudgeID: "j2"},
		{TeamID: "t2", JudgeID: "j1"},
		{TeamID: "t2", JudgeID: "j2"},
	}

	n, err := repo.ReplaceAllocations(ctx, "r1", want)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, want, pairsOf(t, repo, "r1"), "replace then list returns exactly the written set")
	assert.Len(t, pairsOf(t, repo, "r2"), 1, "other rounds are untouched")

	var scores int64
	require.NoError(t, db.Table("scores").Count(&scores).Error)
	assert.Zero(t, scores, "scores of replaced allocations are removed")
}

func TestRepository_ReplaceAllocations_Empty(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedTeam(t, db, "t1")
	testutil.SeedUser(t, db, "j1", "judge")
	testutil.SeedAllocation(t, db, "r1", "t1", "j1")

	n, err := repo.ReplaceAllocations(ctx, "r1", nil)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, pairsOf(t, repo, "r1"))
}

func TestRepository_ReplaceAllocations_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedTeam(t, db, "t1")
	testutil.SeedUser(t, db, "j1", "judge")
	testutil.SeedAllocation(t, db, "r1", "t1", "j1")

	_, err := repo.ReplaceAllocations(ctx, "r1", []allocator.Pair{
		{TeamID: "t1", JudgeID: "j1"},
		{TeamID: "t1", JudgeID: "j1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)
	assert.Equal(t, []allocator.Pair{{TeamID: "t1", JudgeID: "j1"}}, pairsOf(t, repo, "r1"),
		"a failed insert leaves the previous set in place")
}
