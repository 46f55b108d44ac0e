// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/judging_rounds/internal/database/migrate"
)

// NewSQLiteDB opens an in-memory SQLite database with the full schema applied.
// The pool is pinned to one connection so every query sees the same database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("MIGRATIONS_PATH", "")

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate.Migrate(db))
	return db
}

// Logger returns a no-op sugared logger.
func Logger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// SeedRound inserts an open round with the given capacities.
func SeedRound(t *testing.T, db *gorm.DB, roundID string, maxJudgesPerTeam, maxTeamsPerJudge int) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO rounds (round_id, name, max_judges_per_team, max_teams_per_judge) VALUES (?, ?, ?, ?)",
		roundID, "Round "+roundID, maxJudgesPerTeam, maxTeamsPerJudge,
	).Error)
}

// SeedTeam inserts a team.
func SeedTeam(t *testing.T, db *gorm.DB, teamID string) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO teams (team_id, team_name) VALUES (?, ?)", teamID, "Team "+teamID,
	).Error)
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, db *gorm.DB, userID, role string) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO users (user_id, username, email, role) VALUES (?, ?, ?, ?)",
		userID, userID, userID+"@example.com", role,
	).Error)
}

// SeedParticipation records whether a team takes part in a round.
func SeedParticipation(t *testing.T, db *gorm.DB, roundID, teamID string, participating bool) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO participations (round_id, team_id, is_participating) VALUES (?, ?, ?)",
		roundID, teamID, participating,
	).Error)
}

// SeedCriterion inserts a criterion with the given maximum score.
func SeedCriterion(t *testing.T, db *gorm.DB, criterionID string, maxScore float64) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO criteria (criterion_id, description, default_max_score) VALUES (?, ?, ?)",
		criterionID, "criterion "+criterionID, maxScore,
	).Error)
}

// SeedRoundCriterion activates or deactivates a criterion for a round.
func SeedRoundCriterion(t *testing.T, db *gorm.DB, roundID, criterionID string, active bool) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO round_criteria (round_id, criterion_id, is_active, weight) VALUES (?, ?, ?, 1)",
		roundID, criterionID, active,
	).Error)
}

// SeedAllocation inserts an allocation and returns its id.
func SeedAllocation(t *testing.T, db *gorm.DB, roundID, teamID, judgeID string) int64 {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO allocations (round_id, team_id, judge_id) VALUES (?, ?, ?)",
		roundID, teamID, judgeID,
	).Error)

	var id int64
	require.NoError(t, db.Raw(
		"SELECT id FROM allocations WHERE round_id = ? AND team_id = ? AND judge_id = ?",
		roundID, teamID, judgeID,
	).Scan(&id).Error)
	return id
}

// SeedScore inserts a score for an allocation.
func SeedScore(t *testing.T, db *gorm.DB, allocationID int64, criterionID string, value, maxValue float64) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO scores (allocation_id, criterion_id, value, max_value) VALUES (?, ?, ?, ?)",
		allocationID, criterionID, value, maxValue,
	).Error)
}
