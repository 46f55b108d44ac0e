// Package service provides business logic layer for score module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	criterionRepository "github.com/festy23/judging_rounds/internal/criterion/repository"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
	"github.com/festy23/judging_rounds/internal/score/model"
	"github.com/festy23/judging_rounds/internal/score/repository"
)

// Service defines the interface for score business logic operations.
type Service interface {
	// RecordScore stores a judge's mark for an allocated team on an active criterion.
	RecordScore(ctx context.Context, req *model.RecordScoreRequest) (*model.Score, error)

	// ListScoresForRound returns every score recorded in a round.
	ListScoresForRound(ctx context.Context, roundID string) (*model.ListScoresResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new score service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// RecordScore stores a judge's mark for an allocated team on an active criterion.
//
// The round status is not consulted: scores are accepted for closed and
// archived rounds too. Recording again for the same criterion overwrites.
func (s *service) RecordScore(ctx context.Context, req *model.RecordScoreRequest) (*model.Score, error) {
	if req.RoundID == "" || req.TeamID == "" || req.JudgeID == "" || req.CriterionID == "" || req.Value == nil {
		return nil, model.ErrMissingFields
	}
	value := *req.Value

	var result *model.Score
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if _, err := roundRepository.New(tx, s.logger).GetByID(ctx, req.RoundID); err != nil {
			return err
		}

		allocationID, err := txRepo.FindAllocationID(ctx, req.RoundID, req.TeamID, req.JudgeID)
		if err != nil {
			return err
		}

		criterion, err := criterionRepository.New(tx, s.logger).GetActiveForRound(ctx, req.RoundID, req.CriterionID)
		if err != nil {
			return err
		}

		if value < 0 || value > criterion.DefaultMaxScore {
			return model.ErrValueOutOfRange
		}

		score := &model.Score{
			AllocationID: allocationID,
			CriterionID:  req.CriterionID,
			Value:        value,
			MaxValue:     criterion.DefaultMaxScore,
		}
		if err := txRepo.Upsert(ctx, score); err != nil {
			return err
		}

		result = score
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("record score", err)
	}

	s.logger.Infow("score recorded",
		"round_id", req.RoundID,
		"team_id", req.TeamID,
		"judge_id", req.JudgeID,
		"criterion_id", req.CriterionID,
		"value", value,
	)
	return result, nil
}

// ListScoresForRound returns every score recorded in a round.
func (s *service) ListScoresForRound(ctx context.Context, roundID string) (*model.ListScoresResponse, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	if _, err := roundRepository.New(s.db, s.logger).GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	scores, err := s.repo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	return &model.ListScoresResponse{RoundID: roundID, Scores: scores}, nil
}
