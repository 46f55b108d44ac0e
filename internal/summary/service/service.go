// Package service builds round summaries from a consistent snapshot of the store.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	allocationRepository "github.com/festy23/judging_rounds/internal/allocation/repository"
	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/database/database"
	participationRepository "github.com/festy23/judging_rounds/internal/participation/repository"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
	scoreRepository "github.com/festy23/judging_rounds/internal/score/repository"
	"github.com/festy23/judging_rounds/internal/summary/aggregator"
	"github.com/festy23/judging_rounds/internal/summary/model"
)

// Service defines the interface for summary operations.
type Service interface {
	// Summarize ranks the participating teams of a round by average score.
	Summarize(ctx context.Context, roundID string) (*model.RoundSummaryResponse, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new summary service instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{db: db, logger: logger}
}

// Summarize ranks the participating teams of a round by average score.
// Teams, allocations and scores are read in one transaction so the ranking
// never mixes two allocation rebuilds. Nothing is cached.
func (s *service) Summarize(ctx context.Context, roundID string) (*model.RoundSummaryResponse, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	var (
		round       *roundModel.Round
		teams       []aggregator.Team
		allocations []aggregator.Allocation
		scores      []aggregator.Score
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		round, err = roundRepository.New(tx, s.logger).GetByID(ctx, roundID)
		if err != nil {
			return err
		}

		participating, err := participationRepository.New(tx, s.logger).ListParticipatingTeams(ctx, roundID)
		if err != nil {
			return err
		}
		teams = make([]aggregator.Team, 0, len(participating))
		for _, t := range participating {
			teams = append(teams, aggregator.Team{TeamID: t.TeamID, TeamName: t.TeamName})
		}

		allocated, err := allocationRepository.New(tx, s.logger).ListByRound(ctx, roundID)
		if err != nil {
			return err
		}
		allocations = make([]aggregator.Allocation, 0, len(allocated))
		for _, a := range allocated {
			allocations = append(allocations, aggregator.Allocation{TeamID: a.TeamID, JudgeID: a.JudgeID})
		}

		recorded, err := scoreRepository.New(tx, s.logger).ListByRound(ctx, roundID)
		if err != nil {
			return err
		}
		scores = make([]aggregator.Score, 0, len(recorded))
		for _, sc := range recorded {
			scores = append(scores, aggregator.Score{TeamID: sc.TeamID, Value: sc.Value})
		}

		return nil
	}, database.ReadSnapshot(s.db))
	if err != nil {
		return nil, apperr.Storage("summarize round", err)
	}

	rows := aggregator.Summarize(teams, allocations, scores)

	s.logger.Debugw("round summarized",
		"round_id", roundID,
		"teams", len(rows),
		"allocations", len(allocations),
		"scores", len(scores),
	)
	return &model.RoundSummaryResponse{
		RoundID:     roundID,
		RoundStatus: string(round.Status),
		Teams:       rows,
	}, nil
}
