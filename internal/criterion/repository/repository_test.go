package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/criterion/model"
	"github.com/festy23/judging_rounds/internal/testutil"
)

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())

	require.NoError(t, repo.Create(ctx, &model.Criterion{CriterionID: "design", Description: "UX", DefaultMaxScore: 10}))

	got, err := repo.GetByID(ctx, "design")
	require.NoError(t, err)
	assert.Equal(t, "UX", got.Description)
	assert.InDelta(t, 10.0, got.DefaultMaxScore, 1e-9)

	err = repo.Create(ctx, &model.Criterion{CriterionID: "design", DefaultMaxScore: 5})
	assert.ErrorIs(t, err, model.ErrCriterionExists)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrCriterionNotFound)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	testutil.SeedCriterion(t, db, "b", 5)
	testutil.SeedCriterion(t, db, "a", 5)

	criteria, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, criteria, 2)
	assert.Equal(t, "a", criteria[0].CriterionID)
}

func TestRepository_RoundCriteria(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	testutil.SeedRound(t, db, "r1", 2, 3)
	testutil.SeedCriterion(t, db, "design", 10)
	testutil.SeedCriterion(t, db, "pitch", 5)

	require.NoError(t, repo.UpsertRoundCriterion(ctx, &model.RoundCriterion{
		RoundID: "r1", CriterionID: "design", IsActive: true, Weight: 2,
	}))
	require.NoError(t, repo.UpsertRoundCriterion(ctx, &model.RoundCriterion{
		RoundID: "r1", CriterionID: "pitch", IsActive: true, Weight: 1,
	}))
	require.NoError(t, repo.UpsertRoundCriterion(ctx, &model.RoundCriterion{
		RoundID: "r1", CriterionID: "pitch", IsActive: false, Weight: 0.5,
	}))

	all, err := repo.ListRoundCriteria(ctx, "r1", false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "design", all[0].CriterionID)
	assert.InDelta(t, 10.0, all[0].DefaultMaxScore, 1e-9)
	assert.False(t, all[1].IsActive)
	assert.InDelta(t, 0.5, all[1].Weight, 1e-9)

	active, err := repo.ListRoundCriteria(ctx, "r1", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "design", active[0].CriterionID)

	got, err := repo.GetActiveForRound(ctx, "r1", "design")
	require.NoError(t, err)
	assert.Equal(t, "design", got.CriterionID)

	_, err = repo.GetActiveForRound(ctx, "r1", "pitch")
	assert.ErrorIs(t, err, model.ErrCriterionInactive)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRepository_StorageFailure(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := New(db, testutil.Logger())
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.List(context.Background())

	assert.ErrorIs(t, err, apperr.ErrStorageFailure)
}
