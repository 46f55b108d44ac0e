// Package service rebuilds and lists judge allocations for rounds.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/allocation/allocator"
	"github.com/festy23/judging_rounds/internal/allocation/model"
	"github.com/festy23/judging_rounds/internal/allocation/repository"
	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/metrics"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
)

// Service defines the interface for allocation business logic operations.
type Service interface {
	// AutoAllocate replaces a round's allocations with a fresh round-robin assignment.
	AutoAllocate(ctx context.Context, roundID string) (*model.AutoAllocateResponse, error)

	// ListAllocations returns the current allocations of a round.
	ListAllocations(ctx context.Context, roundID string) (*model.ListAllocationsResponse, error)
}

type service struct {
	repo    repository.Repository
	db      *gorm.DB
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger
	group   singleflight.Group
}

// New creates a new allocation service instance. m may be nil.
func New(repo repository.Repository, db *gorm.DB, m *metrics.Metrics, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		db:      db,
		metrics: m,
		logger:  logger,
	}
}

// AutoAllocate replaces a round's allocations with a fresh round-robin assignment.
//
// Concurrent calls for the same round in this process share one run. Across
// processes the round row lock serializes rebuilds, so the last committed
// rebuild wins and the table never mixes two results.
func (s *service) AutoAllocate(ctx context.Context, roundID string) (*model.AutoAllocateResponse, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	v, err, shared := s.group.Do(roundID, func() (any, error) {
		return s.rebuild(context.WithoutCancel(ctx), roundID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debugw("auto allocation shared with concurrent caller", "round_id", roundID)
	}

	return &model.AutoAllocateResponse{RoundID: roundID, Allocated: v.(int)}, nil
}

func (s *service) rebuild(ctx context.Context, roundID string) (int, error) {
	start := time.Now()

	var count, teamCount, judgeCount int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		round, err := roundRepository.New(tx, s.logger).GetForUpdate(ctx, roundID)
		if err != nil {
			return err
		}
		if round.Status == roundModel.StatusArchived {
			return roundModel.ErrRoundArchived
		}

		teams, err := txRepo.ListParticipatingTeamIDs(ctx, roundID)
		if err != nil {
			return err
		}
		judges, err := txRepo.ListJudgeIDs(ctx)
		if err != nil {
			return err
		}
		teamCount, judgeCount = len(teams), len(judges)

		pairs := allocator.Allocate(teams, judges, round.MaxJudgesPerTeam, round.MaxTeamsPerJudge)

		count, err = txRepo.ReplaceAllocations(ctx, roundID, pairs)
		return err
	})
	s.metrics.ObserveAllocation(roundID, count, time.Since(start), err)
	if err != nil {
		return 0, apperr.Storage("auto allocate", err)
	}

	s.logger.Infow("allocations rebuilt",
		"round_id", roundID,
		"teams", teamCount,
		"judges", judgeCount,
		"allocated", count,
		"duration", time.Since(start),
	)
	return count, nil
}

// ListAllocations returns the current allocations of a round.
func (s *service) ListAllocations(ctx context.Context, roundID string) (*model.ListAllocationsResponse, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	if _, err := roundRepository.New(s.db, s.logger).GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	allocations, err := s.repo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	return &model.ListAllocationsResponse{RoundID: roundID, Allocations: allocations}, nil
}
