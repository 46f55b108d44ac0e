// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	teamModel "github.com/festy23/judging_rounds/internal/team/model"
	"github.com/festy23/judging_rounds/internal/team/repository"
)

const maxFieldLength = 255

// Service defines the interface for team business logic operations.
type Service interface {
	// AddTeam creates a new team with members.
	AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams without members.
	ListTeams(ctx context.Context) (*teamModel.ListTeamsResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AddTeam creates a new team with members in a transaction.
func (s *service) AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error) {
	if len(req.TeamID) == 0 || len(req.TeamID) > maxFieldLength {
		return nil, teamModel.ErrInvalidTeamID
	}
	if len(req.TeamName) == 0 || len(req.TeamName) > maxFieldLength {
		return nil, teamModel.ErrInvalidTeamName
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, err := txRepo.Create(ctx, req.TeamID, req.TeamName)
		if err != nil {
			return err
		}

		for _, member := range req.Members {
			if member.Name == "" {
				continue
			}
			if err := txRepo.AddMember(ctx, team.TeamID, member.Name, member.Email); err != nil {
				return err
			}
		}

		members, err := txRepo.GetTeamMembers(ctx, team.TeamID)
		if err != nil {
			return err
		}

		result = &teamModel.TeamResponse{
			TeamID:   team.TeamID,
			TeamName: team.TeamName,
			Members:  members,
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("add team", err)
	}

	s.logger.Infow("team created", "team_id", result.TeamID, "members", len(result.Members))
	return result, nil
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	if teamID == "" {
		return nil, teamModel.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamResponse{
		TeamID:   team.TeamID,
		TeamName: team.TeamName,
		Members:  members,
	}, nil
}

// ListTeams returns all teams without members.
func (s *service) ListTeams(ctx context.Context) (*teamModel.ListTeamsResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &teamModel.ListTeamsResponse{Teams: teams}, nil
}
