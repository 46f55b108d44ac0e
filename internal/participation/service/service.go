// Package service provides business logic layer for participation module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/participation/model"
	"github.com/festy23/judging_rounds/internal/participation/repository"
	roundRepository "github.com/festy23/judging_rounds/internal/round/repository"
	teamRepository "github.com/festy23/judging_rounds/internal/team/repository"
)

// Service defines the interface for participation business logic operations.
type Service interface {
	// SetParticipation opts a team in or out of a round.
	SetParticipation(ctx context.Context, req *model.SetParticipationRequest) (*model.Participation, error)

	// ListParticipatingTeams returns the teams taking part in a round ordered by team_id.
	ListParticipatingTeams(ctx context.Context, roundID string) (*model.ParticipatingTeamsResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new participation service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// SetParticipation opts a team in or out of a round.
// The round row is locked so concurrent opt-ins cannot exceed max_teams.
func (s *service) SetParticipation(
	ctx context.Context,
	req *model.SetParticipationRequest,
) (*model.Participation, error) {
	if req.RoundID == "" || req.TeamID == "" || req.IsParticipating == nil {
		return nil, model.ErrMissingIDs
	}
	participating := *req.IsParticipating

	var result *model.Participation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		round, err := roundRepository.New(tx, s.logger).GetForUpdate(ctx, req.RoundID)
		if err != nil {
			return err
		}
		if _, err := teamRepository.New(tx, s.logger).GetByID(ctx, req.TeamID); err != nil {
			return err
		}

		if participating && round.MaxTeams > 0 {
			already, err := txRepo.IsParticipating(ctx, req.RoundID, req.TeamID)
			if err != nil {
				return err
			}
			count, err := txRepo.CountParticipating(ctx, req.RoundID)
			if err != nil {
				return err
			}
			if !already && count >= int64(round.MaxTeams) {
				return model.ErrRoundFull
			}
		}

		result, err = txRepo.Upsert(ctx, req.RoundID, req.TeamID, participating)
		return err
	})
	if err != nil {
		return nil, apperr.Storage("set participation", err)
	}

	s.logger.Infow("participation set",
		"round_id", req.RoundID,
		"team_id", req.TeamID,
		"is_participating", participating,
	)
	return result, nil
}

// ListParticipatingTeams returns the teams taking part in a round ordered by team_id.
func (s *service) ListParticipatingTeams(
	ctx context.Context,
	roundID string,
) (*model.ParticipatingTeamsResponse, error) {
	if roundID == "" {
		return nil, model.ErrMissingIDs
	}

	if _, err := roundRepository.New(s.db, s.logger).GetByID(ctx, roundID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListParticipatingTeams(ctx, roundID)
	if err != nil {
		return nil, err
	}

	return &model.ParticipatingTeamsResponse{RoundID: roundID, Teams: teams}, nil
}
