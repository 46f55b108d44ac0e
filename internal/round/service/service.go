// Package service provides business logic layer for round module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/config"
	roundModel "github.com/festy23/judging_rounds/internal/round/model"
	"github.com/festy23/judging_rounds/internal/round/repository"
)

const maxIDLength = 255

// Service defines the interface for round business logic operations.
type Service interface {
	// CreateRound creates an open round.
	CreateRound(ctx context.Context, req *roundModel.CreateRoundRequest) (*roundModel.Round, error)

	// GetRound returns a round by id.
	GetRound(ctx context.Context, roundID string) (*roundModel.Round, error)

	// ListRounds returns all rounds.
	ListRounds(ctx context.Context) (*roundModel.ListRoundsResponse, error)

	// SetRoundStatus records a new status for a round.
	SetRoundStatus(ctx context.Context, roundID, status string) (*roundModel.Round, error)

	// DeleteRound deletes a round with its participations, criteria, allocations and scores.
	DeleteRound(ctx context.Context, roundID string) error
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	defaults config.RoundConfig
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New creates a new round service instance.
func New(repo repository.Repository, db *gorm.DB, defaults config.RoundConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		db:       db,
		defaults: defaults,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateRound creates an open round.
func (s *service) CreateRound(ctx context.Context, req *roundModel.CreateRoundRequest) (*roundModel.Round, error) {
	if len(req.RoundID) == 0 || len(req.RoundID) > maxIDLength {
		return nil, roundModel.ErrInvalidRoundID
	}
	if len(req.Name) == 0 || len(req.Name) > maxIDLength {
		return nil, roundModel.ErrInvalidRoundName
	}

	round := &roundModel.Round{
		RoundID:          req.RoundID,
		Name:             req.Name,
		Status:           roundModel.StatusOpen,
		MaxTeams:         valueOr(req.MaxTeams, s.defaults.DefaultMaxTeams),
		MaxJudgesPerTeam: valueOr(req.MaxJudgesPerTeam, s.defaults.DefaultMaxJudgesPerTeam),
		MaxTeamsPerJudge: valueOr(req.MaxTeamsPerJudge, s.defaults.DefaultMaxTeamsPerJudge),
	}
	if round.MaxTeams < 0 || round.MaxJudgesPerTeam < 0 || round.MaxTeamsPerJudge < 0 {
		return nil, roundModel.ErrNegativeCapacity
	}

	if err := s.repo.Create(ctx, round); err != nil {
		return nil, err
	}

	s.logger.Infow("round created",
		"round_id", round.RoundID,
		"max_judges_per_team", round.MaxJudgesPerTeam,
		"max_teams_per_judge", round.MaxTeamsPerJudge,
	)
	return round, nil
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// GetRound returns a round by id.
func (s *service) GetRound(ctx context.Context, roundID string) (*roundModel.Round, error) {
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}
	return s.repo.GetByID(ctx, roundID)
}

// ListRounds returns all rounds.
func (s *service) ListRounds(ctx context.Context) (*roundModel.ListRoundsResponse, error) {
	rounds, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &roundModel.ListRoundsResponse{Rounds: rounds}, nil
}

// SetRoundStatus records a new status for a round.
//
// The value is checked before the round is looked up. Moving to closed stamps
// closed_at with the current time; any other target keeps the stored value,
// so open to archived leaves it null. Allocations and scores are untouched.
func (s *service) SetRoundStatus(ctx context.Context, roundID, status string) (*roundModel.Round, error) {
	target := roundModel.Status(status)
	if !target.Valid() {
		return nil, roundModel.ErrUnknownStatus
	}
	if roundID == "" {
		return nil, roundModel.ErrInvalidRoundID
	}

	var result *roundModel.Round
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		round, err := txRepo.GetForUpdate(ctx, roundID)
		if err != nil {
			return err
		}

		previous := round.Status
		round.Status = target
		if target == roundModel.StatusClosed {
			closedAt := s.now()
			round.ClosedAt = &closedAt
		}

		if err := txRepo.Save(ctx, round); err != nil {
			return err
		}

		s.logger.Infow("round status changed",
			"round_id", roundID,
			"from", previous,
			"to", target,
		)
		result = round
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("set round status", err)
	}

	return result, nil
}

// DeleteRound deletes a round with its participations, criteria, allocations and scores.
func (s *service) DeleteRound(ctx context.Context, roundID string) error {
	if roundID == "" {
		return roundModel.ErrInvalidRoundID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.New(tx, s.logger).Delete(ctx, roundID)
	})
	if err != nil {
		return apperr.Storage("delete round", err)
	}

	s.logger.Infow("round deleted", "round_id", roundID)
	return nil
}
