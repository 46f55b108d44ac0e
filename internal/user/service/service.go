// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/judging_rounds/internal/user/model"
	"github.com/festy23/judging_rounds/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// AddUser registers a judge or admin.
	AddUser(ctx context.Context, req *model.AddUserRequest) (*model.User, error)

	// ListJudges returns every user with the judge role.
	ListJudges(ctx context.Context) (*model.ListJudgesResponse, error)

	// GetAllocations returns the teams a judge must evaluate across rounds.
	GetAllocations(ctx context.Context, userID string) (*model.GetAllocationsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// AddUser registers a judge or admin.
func (s *service) AddUser(ctx context.Context, req *model.AddUserRequest) (*model.User, error) {
	if len(req.UserID) == 0 || len(req.UserID) > 255 {
		return nil, model.ErrInvalidUserID
	}
	if !req.Role.Valid() {
		return nil, model.ErrInvalidRole
	}

	user := &model.User{
		UserID:   req.UserID,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user added", "user_id", user.UserID, "role", user.Role)
	return user, nil
}

// ListJudges returns every user with the judge role.
func (s *service) ListJudges(ctx context.Context) (*model.ListJudgesResponse, error) {
	judges, err := s.repo.ListByRole(ctx, model.RoleJudge)
	if err != nil {
		return nil, err
	}
	return &model.ListJudgesResponse{Judges: judges}, nil
}

// GetAllocations returns the teams a judge must evaluate across rounds.
func (s *service) GetAllocations(ctx context.Context, userID string) (*model.GetAllocationsResponse, error) {
	s.logger.Debugw("GetAllocations called", "user_id", userID)

	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	allocations, err := s.repo.GetAssignedAllocations(ctx, userID)
	if err != nil {
		s.logger.Errorw("GetAllocations failed", "user_id", userID, "error", err)
		return nil, err
	}

	return &model.GetAllocationsResponse{
		UserID:      userID,
		Allocations: allocations,
	}, nil
}
