// Package repository provides data access layer for participation module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/participation/model"
	teamModel "github.com/festy23/judging_rounds/internal/team/model"
)

// Repository defines the interface for participation data access operations.
type Repository interface {
	// Upsert writes the participation flag for a (round, team) pair.
	Upsert(ctx context.Context, roundID, teamID string, participating bool) (*model.Participation, error)

	// IsParticipating reports whether the team currently takes part in the round.
	IsParticipating(ctx context.Context, roundID, teamID string) (bool, error)

	// CountParticipating returns the number of participating teams in a round.
	CountParticipating(ctx context.Context, roundID string) (int64, error)

	// ListParticipatingTeams returns participating teams ordered by team_id.
	ListParticipatingTeams(ctx context.Context, roundID string) ([]teamModel.Team, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new participation repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert writes the participation flag for a (round, team) pair.
func (r *repository) Upsert(
	ctx context.Context,
	roundID, teamID string,
	participating bool,
) (*model.Participation, error) {
	r.logger.Debugw("Upsert called", "round_id", roundID, "team_id", teamID, "is_participating", participating)

	now := time.Now()
	p := &model.Participation{
		RoundID:         roundID,
		TeamID:          teamID,
		IsParticipating: participating,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "round_id"}, {Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_participating", "updated_at"}),
		}).
		Create(p).Error
	if err != nil {
		r.logger.Errorw("Upsert database error", "round_id", roundID, "team_id", teamID, "error", err)
		return nil, apperr.Storage("upsert participation", err)
	}

	return p, nil
}

// IsParticipating reports whether the team currently takes part in the round.
func (r *repository) IsParticipating(ctx context.Context, roundID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Participation{}).
		Where("round_id = ? AND team_id = ? AND is_participating = ?", roundID, teamID, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("IsParticipating database error", "round_id", roundID, "team_id", teamID, "error", err)
		return false, apperr.Storage("check participation", err)
	}
	return count > 0, nil
}

// CountParticipating returns the number of participating teams in a round.
func (r *repository) CountParticipating(ctx context.Context, roundID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Participation{}).
		Where("round_id = ? AND is_participating = ?", roundID, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CountParticipating database error", "round_id", roundID, "error", err)
		return 0, apperr.Storage("count participations", err)
	}
	return count, nil
}

// ListParticipatingTeams returns participating teams ordered by team_id.
func (r *repository) ListParticipatingTeams(ctx context.Context, roundID string) ([]teamModel.Team, error) {
	r.logger.Debugw("ListParticipatingTeams called", "round_id", roundID)

	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Joins("JOIN participations ON participations.team_id = teams.team_id").
		Where("participations.round_id = ? AND participations.is_participating = ?", roundID, true).
		Order("teams.team_id ASC").
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw("ListParticipatingTeams database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("list participating teams", err)
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}
