package reservations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-LabReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
)

type MockReservationRepository struct {
	testifymock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *MockReservationRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *MockReservationRepository) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func confirmed(id, owner string) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		ResourceID: "pc-01",
		Date:       "2026-10-21",
		SlotID:     domain.SlotAfternoon,
		UserID:     owner,
		UserName:   "Kim",
		Status:     domain.ReservationConfirmed,
	}
}

func TestService_Cancel(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)
		repo.On("Cancel", testifymock.Anything, "r-1").Return(nil)

		require.NoError(t, svc.Cancel(context.Background(), "r-1", "u-1"))
		repo.AssertExpectations(t)
	})

	t.Run("admin cancels any reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)
		repo.On("Cancel", testifymock.Anything, "r-1").Return(nil)

		require.NoError(t, svc.Cancel(context.Background(), "r-1", ""))
		repo.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)

		err := svc.Cancel(context.Background(), "r-1", "u-2")
		assert.ErrorIs(t, err, reservations.ErrAccessDenied)
		repo.AssertNotCalled(t, "Cancel", testifymock.Anything, testifymock.Anything)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		res := confirmed("r-1", "u-1")
		res.Status = domain.ReservationCancelled
		repo.On("GetByID", testifymock.Anything, "r-1").Return(res, nil)

		require.NoError(t, svc.Cancel(context.Background(), "r-1", "u-1"))
		repo.AssertNotCalled(t, "Cancel", testifymock.Anything, testifymock.Anything)
	})

	t.Run("concurrent cancel is a no-op", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)
		repo.On("Cancel", testifymock.Anything, "r-1").Return(reservationRepo.ErrNotActive)

		require.NoError(t, svc.Cancel(context.Background(), "r-1", "u-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "missing").Return(nil, reservationRepo.ErrReservationNotFound)

		err := svc.Cancel(context.Background(), "missing", "u-1")
		assert.ErrorIs(t, err, reservations.ErrReservationNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := reservations.NewService(new(MockReservationRepository), logger.NewNop())
		assert.ErrorIs(t, svc.Cancel(context.Background(), " ", "u-1"), reservations.ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockReservationRepository)
		svc := reservations.NewService(repo, logger.NewNop())

		repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)
		repo.On("Cancel", testifymock.Anything, "r-1").Return(errors.New("connection refused"))

		assert.ErrorIs(t, svc.Cancel(context.Background(), "r-1", "u-1"), reservations.ErrTransientFailure)
	})
}

func TestService_ListByUser(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := reservations.NewService(repo, logger.NewNop())

	evening := confirmed("r-3", "u-1")
	evening.SlotID = domain.SlotEvening
	morning := confirmed("r-2", "u-1")
	morning.SlotID = domain.SlotMorning
	earlier := confirmed("r-1", "u-1")
	earlier.Date = "2026-10-20"

	repo.On("GetByUserID", testifymock.Anything, "u-1").
		Return([]*domain.Reservation{evening, morning, earlier}, nil)

	resp, err := svc.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, "r-1", resp.Reservations[0].ID)
	assert.Equal(t, "r-2", resp.Reservations[1].ID)
	assert.Equal(t, "r-3", resp.Reservations[2].ID)
	assert.Equal(t, "Morning (09:00 - 12:00)", resp.Reservations[1].SlotLabel)

	_, err = svc.ListByUser(context.Background(), "")
	assert.ErrorIs(t, err, reservations.ErrInvalidInput)
}

func TestService_GetByID(t *testing.T) {
	repo := new(MockReservationRepository)
	svc := reservations.NewService(repo, logger.NewNop())

	repo.On("GetByID", testifymock.Anything, "r-1").Return(confirmed("r-1", "u-1"), nil)

	resp, err := svc.GetByID(context.Background(), "r-1", "u-1", false)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2026-10-21", resp.Date)

	_, err = svc.GetByID(context.Background(), "r-1", "u-2", false)
	assert.ErrorIs(t, err, reservations.ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "r-1", "admin-1", true)
	assert.NoError(t, err)
}
