// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	teamModel "github.com/festy23/judging_rounds/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team.
	Create(ctx context.Context, teamID, teamName string) (*teamModel.Team, error)

	// GetByID finds team by team_id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// List returns all teams ordered by team_id.
	List(ctx context.Context) ([]teamModel.Team, error)

	// AddMember adds a member to the team roster.
	AddMember(ctx context.Context, teamID, name, email string) error

	// GetTeamMembers returns all members of a team.
	GetTeamMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, teamID, teamName string) (*teamModel.Team, error) {
	r.logger.Debugw("Create called", "team_id", teamID)

	team := &teamModel.Team{
		TeamID:   teamID,
		TeamName: teamName,
	}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return nil, teamModel.ErrTeamExists
		}
		r.logger.Errorw("Create database error", "team_id", teamID, "error", err)
		return nil, apperr.Storage("create team", err)
	}

	return team, nil
}

// GetByID finds team by team_id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", teamID, "error", err)
		return nil, apperr.Storage("get team", err)
	}

	return &team, nil
}

// List returns all teams ordered by team_id.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	if err := r.db.WithContext(ctx).Order("team_id ASC").Find(&teams).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, apperr.Storage("list teams", err)
	}

	if teams == nil {
		return []teamModel.Team{}, nil
	}
	return teams, nil
}

// AddMember adds a member to the team roster.
func (r *repository) AddMember(ctx context.Context, teamID, name, email string) error {
	member := &teamModel.Member{
		TeamID: teamID,
		Name:   name,
		Email:  email,
	}

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return teamModel.ErrDuplicateMember
		}
		r.logger.Errorw("AddMember database error", "team_id", teamID, "error", err)
		return apperr.Storage("add team member", err)
	}

	return nil
}

// GetTeamMembers returns all members of a team.
func (r *repository) GetTeamMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember

	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("name, email").
		Where("team_id = ?", teamID).
		Order("id ASC").
		Scan(&members).Error

	if err != nil {
		r.logger.Errorw("GetTeamMembers database error", "team_id", teamID, "error", err)
		return nil, apperr.Storage("get team members", err)
	}

	if members == nil {
		return []teamModel.TeamMember{}, nil
	}

	return members, nil
}
