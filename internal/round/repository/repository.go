// Package repository provides data access layer for round module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/judging_rounds/internal/apperr"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
)

// Repository defines the interface for round data access operations.
type Repository interface {
	// Create inserts a new round.
	Create(ctx context.Context, round *roundModel.Round) error

	// GetByID finds a round by round_id.
	GetByID(ctx context.Context, roundID string) (*roundModel.Round, error)

	// GetForUpdate finds a round and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, roundID string) (*roundModel.Round, error)

	// List returns all rounds ordered by round_id.
	List(ctx context.Context) ([]roundModel.Round, error)

	// Save writes every column of an existing round.
	Save(ctx context.Context, round *roundModel.Round) error

	// Delete removes a round; dependent rows are removed by cascade.
	Delete(ctx context.Context, roundID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new round repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new round.
func (r *repository) Create(ctx context.Context, round *roundModel.Round) error {
	r.logger.Debugw("Create called", "round_id", round.RoundID)

	if err := r.db.WithContext(ctx).Create(round).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return roundModel.ErrRoundExists
		}
		r.logger.Errorw("Create database error", "round_id", round.RoundID, "error", err)
		return apperr.Storage("create round", err)
	}

	return nil
}

// GetByID finds a round by round_id.
func (r *repository) GetByID(ctx context.Context, roundID string) (*roundModel.Round, error) {
	return r.get(ctx, r.db.WithContext(ctx), roundID)
}

// GetForUpdate finds a round and locks its row until the transaction ends.
// SQLite serializes writers already and has no row locks.
func (r *repository) GetForUpdate(ctx context.Context, roundID string) (*roundModel.Round, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.get(ctx, q, roundID)
}

func (r *repository) get(_ context.Context, q *gorm.DB, roundID string) (*roundModel.Round, error) {
	r.logger.Debugw("GetByID called", "round_id", roundID)

	var round roundModel.Round
	err := q.Where("round_id = ?", roundID).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roundModel.ErrRoundNotFound
		}
		r.logger.Errorw("GetByID database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("get round", err)
	}

	return &round, nil
}

// List returns all rounds ordered by round_id.
func (r *repository) List(ctx context.Context) ([]roundModel.Round, error) {
	r.logger.Debugw("List called")

	var rounds []roundModel.Round
	if err := r.db.WithContext(ctx).Order("round_id ASC").Find(&rounds).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, apperr.Storage("list rounds", err)
	}

	if rounds == nil {
		rounds = []roundModel.Round{}
	}
	return rounds, nil
}

// Save writes every column of an existing round.
func (r *repository) Save(ctx context.Context, round *roundModel.Round) error {
	r.logger.Debugw("Save called", "round_id", round.RoundID, "status", round.Status)

	if err := r.db.WithContext(ctx).Save(round).Error; err != nil {
		r.logger.Errorw("Save database error", "round_id", round.RoundID, "error", err)
		return apperr.Storage("save round", err)
	}

	return nil
}

// Delete removes a round; dependent rows are removed by cascade.
func (r *repository) Delete(ctx context.Context, roundID string) error {
	r.logger.Debugw("Delete called", "round_id", roundID)

	result := r.db.WithContext(ctx).Where("round_id = ?", roundID).Delete(&roundModel.Round{})
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "round_id", roundID, "error", result.Error)
		return apperr.Storage("delete round", result.Error)
	}
	if result.RowsAffected == 0 {
		return roundModel.ErrRoundNotFound
	}

	return nil
}
