// Package service provides business logic layer for criterion module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/criterion/model"
	"github.com/festy23/judging_rounds/internal/criterion/repository"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
)

const (
	maxIDLength   = 255
	defaultWeight = 1.0
)

// Service defines the interface for criterion business logic operations.
type Service interface {
	// CreateCriterion registers a new criterion.
	CreateCriterion(ctx context.Context, req *model.CreateCriterionRequest) (*model.Criterion, error)

	// ListCriteria returns all criteria.
	ListCriteria(ctx context.Context) (*model.ListCriteriaResponse, error)

	// SetRoundCriterion activates, deactivates or reweights a criterion in a round.
	SetRoundCriterion(ctx context.Context, req *model.SetRoundCriterionRequest) (*model.RoundCriterion, error)

	// ListRoundCriteria returns the criteria configured for a round.
	ListRoundCriteria(ctx context.Context, roundID string, activeOnly bool) (*model.RoundCriteriaResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new criterion service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateCriterion registers a new criterion.
func (s *service) CreateCriterion(
	ctx context.Context,
	req *model.CreateCriterionRequest,
) (*model.Criterion, error) {
	if len(req.CriterionID) == 0 || len(req.CriterionID) > maxIDLength {
		return nil, model.ErrInvalidCriterionID
	}
	if req.DefaultMaxScore <= 0 {
		return nil, model.ErrInvalidMaxScore
	}

	criterion := &model.Criterion{
		CriterionID:     req.CriterionID,
		Description:     req.Description,
		DefaultMaxScore: req.DefaultMaxScore,
	}
	if err := s.repo.Create(ctx, criterion); err != nil {
		return nil, err
	}

	s.logger.Infow("criterion created",
		"criterion_id", criterion.CriterionID,
		"default_max_score", criterion.DefaultMaxScore,
	)
	return criterion, nil
}

// ListCriteria returns all criteria.
func (s *service) ListCriteria(ctx context.Context) (*model.ListCriteriaResponse, error) {
	criteria, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ListCriteriaResponse{Criteria: criteria}, nil
}

// SetRoundCriterion activates, deactivates or reweights a criterion in a round.
func (s *service) SetRoundCriterion(
	ctx context.Context,
	req *model.SetRoundCriterionRequest,
) (*model.RoundCriterion, error) {
	if req.RoundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}
	if req.CriterionID == "" {
		return nil, model.ErrInvalidCriterionID
	}

	rc := &model.RoundCriterion{
		RoundID:     req.RoundID,
		CriterionID: req.CriterionID,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Weight:      defaultWeight,
	}
	if req.Weight != nil {
		rc.Weight = *req.Weight
	}
	if rc.Weight < 0 {
		return nil, model.ErrNegativeWeight
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := roundRepository.New(tx, s.logger).GetByID(ctx, req.RoundID); err != nil {
			return err
		}

		txRepo := repository.New(tx, s.logger)
		if _, err := txRepo.GetByID(ctx, req.CriterionID); err != nil {
			return err
		}

		return txRepo.UpsertRoundCriterion(ctx, rc)
	})
	if err != nil {
		return nil, apperr.Storage("set round criterion", err)
	}

	s.logger.Infow("round criterion set",
		"round_id", rc.RoundID,
		"criterion_id", rc.CriterionID,
		"is_active", rc.IsActive,
		"weight", rc.Weight,
	)
	return rc, nil
}

// ListRoundCriteria returns the criteria configured for a round.
func (s *service) ListRoundCriteria(
	ctx context.Context,
	roundID string,
	activeOnly bool,
) (*model.RoundCriteriaResponse, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	if _, err := roundRepository.New(s.db, s.logger).GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	criteria, err := s.repo.ListRoundCriteria(ctx, roundID, activeOnly)
	if err != nil {
		return nil, err
	}

	return &model.RoundCriteriaResponse{RoundID: roundID, Criteria: criteria}, nil
}
