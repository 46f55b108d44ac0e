// Package repository provides data access layer for criterion module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/criterion/model"
)

// Repository defines the interface for criterion data access operations.
type Repository interface {
	// Create inserts a new criterion.
	Create(ctx context.Context, criterion *model.Criterion) error

	// GetByID finds a criterion by criterion_id.
	GetByID(ctx context.Context, criterionID string) (*model.Criterion, error)

	// List returns all criteria ordered by criterion_id.
	List(ctx context.Context) ([]model.Criterion, error)

	// UpsertRoundCriterion writes the active flag and weight of a criterion in a round.
	UpsertRoundCriterion(ctx context.Context, rc *model.RoundCriterion) error

	// ListRoundCriteria returns the criteria configured for a round ordered by criterion_id.
	ListRoundCriteria(ctx context.Context, roundID string, activeOnly bool) ([]model.RoundCriterionView, error)

	// GetActiveForRound returns the criterion if it is active in the round.
	GetActiveForRound(ctx context.Context, roundID, criterionID string) (*model.Criterion, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new criterion repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new criterion.
func (r *repository) Create(ctx context.Context, criterion *model.Criterion) error {
	r.logger.Debugw("Create called", "criterion_id", criterion.CriterionID)

	if err := r.db.WithContext(ctx).Create(criterion).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return model.ErrCriterionExists
		}
		r.logger.Errorw("Create database error", "criterion_id", criterion.CriterionID, "error", err)
		return apperr.Storage("create criterion", err)
	}

	return nil
}

// GetByID finds a criterion by criterion_id.
func (r *repository) GetByID(ctx context.Context, criterionID string) (*model.Criterion, error) {
	var criterion model.Criterion
	err := r.db.WithContext(ctx).Where("criterion_id = ?", criterionID).First(&criterion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCriterionNotFound
		}
		r.logger.Errorw("GetByID database error", "criterion_id", criterionID, "error", err)
		return nil, apperr.Storage("get criterion", err)
	}

	return &criterion, nil
}

// List returns all criteria ordered by criterion_id.
func (r *repository) List(ctx context.Context) ([]model.Criterion, error) {
	var criteria []model.Criterion
	if err := r.db.WithContext(ctx).Order("criterion_id ASC").Find(&criteria).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, apperr.Storage("list criteria", err)
	}

	if criteria == nil {
		criteria = []model.Criterion{}
	}
	return criteria, nil
}

// UpsertRoundCriterion writes the active flag and weight of a criterion in a round.
func (r *repository) UpsertRoundCriterion(ctx context.Context, rc *model.RoundCriterion) error {
	r.logger.Debugw("UpsertRoundCriterion called",
		"round_id", rc.RoundID,
		"criterion_id", rc.CriterionID,
		"is_active", rc.IsActive,
		"weight", rc.Weight,
	)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "round_id"}, {Name: "criterion_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active", "weight"}),
		}).
		Create(rc).Error
	if err != nil {
		r.logger.Errorw("UpsertRoundCriterion database error",
			"round_id", rc.RoundID,
			"criterion_id", rc.CriterionID,
			"error", err,
		)
		return apperr.Storage("upsert round criterion", err)
	}

	return nil
}

// ListRoundCriteria returns the criteria configured for a round ordered by criterion_id.
func (r *repository) ListRoundCriteria(
	ctx context.Context,
	roundID string,
	activeOnly bool,
) ([]model.RoundCriterionView, error) {
	r.logger.Debugw("ListRoundCriteria called", "round_id", roundID, "active_only", activeOnly)

	q := r.db.WithContext(ctx).
		Table("round_criteria rc").
		Select(`rc.criterion_id AS criterion_id,
			c.description AS description,
			c.default_max_score AS default_max_score,
			rc.is_active AS is_active,
			rc.weight AS weight`).
		Joins("JOIN criteria c ON c.criterion_id = rc.criterion_id").
		Where("rc.round_id = ?", roundID)
	if activeOnly {
		q = q.Where("rc.is_active = ?", true)
	}

	var views []model.RoundCriterionView
	if err := q.Order("rc.criterion_id ASC").Scan(&views).Error; err != nil {
		r.logger.Errorw("ListRoundCriteria database error", "round_id", roundID, "error", err)
		return nil, apperr.Storage("list round criteria", err)
	}

	if views == nil {
		views = []model.RoundCriterionView{}
	}
	return views, nil
}

// GetActiveForRound returns the criterion if it is active in the round.
func (r *repository) GetActiveForRound(ctx context.Context, roundID, criterionID string) (*model.Criterion, error) {
	var criterion model.Criterion
	err := r.db.WithContext(ctx).
		Model(&model.Criterion{}).
		Joins("JOIN round_criteria ON round_criteria.criterion_id = criteria.criterion_id").
		Where("round_criteria.round_id = ? AND criteria.criterion_id = ? AND round_criteria.is_active = ?",
			roundID, criterionID, true).
		First(&criterion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCriterionInactive
		}
		r.logger.Errorw("GetActiveForRound database error",
			"round_id", roundID,
			"criterion_id", criterionID,
			"error", err,
		)
		return nil, apperr.Storage("get active criterion", err)
	}

	return &criterion, nil
}
