package user

import (
	"context"
	"errors"
	"testing"

	"fxledger/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]string)
	return users, args.Error(1)
}

func TestService_Exists(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("Exists", mock.Anything, "alice").Return(true, nil).Once()
	repo.On("Exists", mock.Anything, "bob").Return(false, nil).Once()

	ok, err := svc.Exists(context.Background(), " alice ")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Exists(context.Background(), "bob")
	require.NoError(t, err)
	require.False(t, ok)
	repo.AssertExpectations(t)
}

func TestService_Register_TrimsName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, "alice").Return(nil).Once()

	name, err := svc.Register(context.Background(), "  alice ")

	require.NoError(t, err)
	require.Equal(t, "alice", name)
	repo.AssertExpectations(t)
}

func TestService_Register_BlankName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "   ")

	require.Equal(t, domain.ErrInvalidUsername, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_Duplicate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, "alice").Return(domain.ErrUserExists).Once()

	_, err := svc.Register(context.Background(), "alice")

	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestService_List(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("List", mock.Anything).Return(nil, nil).Once()
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)

	repo.On("List", mock.Anything).Return([]string{"alice", "bob"}, nil).Once()
	users, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, users)

	wantErr := errors.New("db query failed")
	repo.On("List", mock.Anything).Return(nil, wantErr).Once()
	_, err = svc.List(context.Background())
	require.ErrorIs(t, err, wantErr)
}
