// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds user by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// ListByRole returns users holding role ordered by user_id.
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)

	// GetAssignedAllocations returns every team the user is allocated to judge.
	GetAssignedAllocations(ctx context.Context, userID string) ([]model.JudgeAllocation, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "user_id", user.UserID, "role", user.Role)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if apperr.IsDuplicate(err) {
			return model.ErrUserExists
		}
		r.logger.Errorw("Create database error", "user_id", user.UserID, "error", err)
		return apperr.Storage("create user", err)
	}

	return nil
}

// GetByID finds user by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, apperr.Storage("get user", err)
	}

	return &user, nil
}

// ListByRole returns users holding role ordered by user_id.
func (r *repository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	r.logger.Debugw("ListByRole called", "role", role)

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("user_id ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("ListByRole database error", "role", role, "error", err)
		return nil, apperr.Storage("list users", err)
	}

	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// GetAssignedAllocations returns every team the user is allocated to judge.
func (r *repository) GetAssignedAllocations(ctx context.Context, userID string) ([]model.JudgeAllocation, error) {
	r.logger.Debugw("GetAssignedAllocations called", "user_id", userID)

	var allocations []model.JudgeAllocation

	err := r.db.WithContext(ctx).
		Table("allocations").
		Select(`
			rounds.round_id,
			rounds.name AS round_name,
			rounds.status AS round_status,
			teams.team_id,
			teams.team_name
		`).
		Joins("JOIN rounds ON allocations.round_id = rounds.round_id").
		Joins("JOIN teams ON allocations.team_id = teams.team_id").
		Where("allocations.judge_id = ?", userID).
		Order("rounds.round_id ASC, teams.team_id ASC").
		Scan(&allocations).Error

	if err != nil {
		r.logger.Errorw("GetAssignedAllocations database error", "user_id", userID, "error", err)
		return nil, apperr.Storage("get assigned allocations", err)
	}

	if allocations == nil {
		allocations = []model.JudgeAllocation{}
	}

	r.logger.Debugw("GetAssignedAllocations completed", "user_id", userID, "count", len(allocations))
	return allocations, nil
}
