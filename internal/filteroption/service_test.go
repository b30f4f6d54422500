package filteroption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Lookups(ctx context.Context, userID int) (*Lookups, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lookups), args.Error(1)
}

func TestGetFilterOptions(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Lookups", ctx, 3).Return(&Lookups{
		Departments: map[string]string{"1": "Roskilde"},
		Buildings:   map[string]string{"4": "Building A"},
	}, nil)

	opts, err := svc.GetFilterOptions(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"1": "Roskilde"}, opts.Departments)
	assert.Equal(t, map[string]string{"4": "Building A"}, opts.Buildings)
	assert.NotNil(t, opts.RoomTypes)
	assert.Empty(t, opts.RoomTypes)
	assert.Equal(t, TimeSlots(), opts.TimeSlots)
	assert.Equal(t, LevelOptions(), opts.LevelOptions)
}

func TestGetFilterOptionsIsFreshPerCall(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()
	repo.On("Lookups", ctx, 3).Return(&Lookups{}, nil)

	first, err := svc.GetFilterOptions(ctx, 3)
	require.NoError(t, err)
	first.TimeSlots["8"] = "changed"

	second, err := svc.GetFilterOptions(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "8-10", second.TimeSlots["8"])
}

func TestGetFilterOptionsErrors(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.GetFilterOptions(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidUser)
	repo.AssertNotCalled(t, "Lookups", mock.Anything, mock.Anything)

	down := apperror.New(apperror.KindConnectivity, "failed to load filter options")
	repo.On("Lookups", ctx, 3).Return(nil, down)
	opts, err := svc.GetFilterOptions(ctx, 3)
	assert.Nil(t, opts)
	assert.Equal(t, apperror.KindConnectivity, apperror.KindOf(err))
}
