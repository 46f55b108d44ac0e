package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/festy23/judging_rounds/internal/apperr"
	"github.com/festy23/judging_rounds/internal/testutil"
	"github.com/festy23/judging_rounds/internal/user/model"
	"github.com/festy23/judging_rounds/internal/user/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockRepository) GetAssignedAllocations(ctx context.Context, userID string) ([]model.JudgeAllocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JudgeAllocation), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, testutil.Logger())
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.UserID == "j1" && u.Role == model.RoleJudge
		})).Return(nil)

		user, err := svc.AddUser(ctx, &model.AddUserRequest{
			UserID: "j1", Username: "Judy", Email: "judy@example.com", Role: model.RoleJudge,
		})

		require.NoError(t, err)
		assert.Equal(t, "j1", user.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, testutil.Logger())

		_, err := svc.AddUser(ctx, &model.AddUserRequest{UserID: "j1", Role: "reviewer"})

		assert.ErrorIs(t, err, model.ErrInvalidRole)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := New(new(mockRepository), testutil.Logger())

		_, err := svc.AddUser(ctx, &model.AddUserRequest{Role: model.RoleJudge})

		assert.ErrorIs(t, err, model.ErrInvalidUserID)
	})
}

func TestService_ListJudges(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mockRepository)
	svc := New(mockRepo, testutil.Logger())
	mockRepo.On("ListByRole", ctx, model.RoleJudge).Return([]model.User{{UserID: "j1"}, {UserID: "j2"}}, nil)

	resp, err := svc.ListJudges(ctx)

	require.NoError(t, err)
	assert.Len(t, resp.Judges, 2)
	mockRepo.AssertExpectations(t)
}

func TestService_GetAllocations(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := testutil.NewSQLiteDB(t)
		svc := New(repository.New(db, testutil.Logger()), testutil.Logger())
		testutil.SeedRound(t, db, "r1", 2, 3)
		testutil.SeedTeam(t, db, "t1")
		testutil.SeedUser(t, db, "j1", "judge")
		testutil.SeedAllocation(t, db, "r1", "t1", "j1")

		resp, err := svc.GetAllocations(ctx, "j1")

		require.NoError(t, err)
		assert.Equal(t, "j1", resp.UserID)
		require.Len(t, resp.Allocations, 1)
		assert.Equal(t, "t1", resp.Allocations[0].TeamID)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, testutil.Logger())
		mockRepo.On("GetByID", ctx, "ghost").Return(nil, model.ErrUserNotFound)

		_, err := svc.GetAllocations(ctx, "ghost")

		assert.ErrorIs(t, err, model.ErrUserNotFound)
		mockRepo.AssertNotCalled(t, "GetAssignedAllocations", mock.Anything, mock.Anything)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := New(new(mockRepository), testutil.Logger())

		_, err := svc.GetAllocations(ctx, "")

		assert.ErrorIs(t, err, model.ErrInvalidUserID)
	})
}
