// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
	"github.com/festy23/judging_rounds/internal/statistics/model"
	"github.com/festy23/judging_rounds/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetJudgeWorkload returns per-judge allocation and score counts for a round.
	GetJudgeWorkload(ctx context.Context, roundID string) (*model.JudgeWorkloadResponse, error)
}

type service struct {
	repo   repository.Repository
	rounds roundRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, rounds roundRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		rounds: rounds,
		logger: logger,
	}
}

// GetJudgeWorkload returns per-judge allocation and score counts for a round.
func (s *service) GetJudgeWorkload(ctx context.Context, roundID string) (*model.JudgeWorkloadResponse, error) {
	s.logger.Debugw("GetJudgeWorkload called", "round_id", roundID)

	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	if _, err := s.rounds.GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	judges, err := s.repo.GetJudgeWorkload(ctx, roundID)
	if err != nil {
		s.logger.Errorw("GetJudgeWorkload failed", "round_id", roundID, "error", err)
		return nil, err
	}

	if judges == nil {
		judges = []model.JudgeWorkload{}
	}

	s.logger.Infow("GetJudgeWorkload completed", "round_id", roundID, "count", len(judges))
	return &model.JudgeWorkloadResponse{
		RoundID: roundID,
		Judges:  judges,
		Total:   len(judges),
	}, nil
}
