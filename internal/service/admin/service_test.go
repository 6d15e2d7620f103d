package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin"
	"github.com/m04kA/SMC-LabReservationService/internal/service/admin/models"
	"github.com/m04kA/SMC-LabReservationService/pkg/logger"
)

type MockResourceRepository struct {
	testifymock.Mock
}

func (m *MockResourceRepository) GetAll(ctx context.Context) ([]*domain.Resource, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*domain.Resource)
	return list, args.Error(1)
}

func (m *MockResourceRepository) UpdateStatus(ctx context.Context, id string, status domain.ResourceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockResourceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockResourceRepository) CountByStatus(ctx context.Context, status domain.ResourceStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

type MockReservationRepository struct {
	testifymock.Mock
}

func (m *MockReservationRepository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *MockReservationRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestService_Overview(t *testing.T) {
	resources := new(MockResourceRepository)
	reservations := new(MockReservationRepository)
	svc := admin.NewService(resources, reservations, logger.NewNop())

	resources.On("Count", testifymock.Anything).Return(4, nil)
	resources.On("CountByStatus", testifymock.Anything, domain.ResourceMaintenance).Return(1, nil)
	reservations.On("CountActive", testifymock.Anything).Return(7, nil)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.OverviewResponse{TotalResources: 4, ActiveReservations: 7, MaintenanceCount: 1}, resp)
}

func TestService_OverviewStoreFailure(t *testing.T) {
	resources := new(MockResourceRepository)
	svc := admin.NewService(resources, new(MockReservationRepository), logger.NewNop())

	resources.On("Count", testifymock.Anything).Return(0, errors.New("db down"))

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, admin.ErrTransientFailure)
}

func TestService_UpdateResourceStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resources := new(MockResourceRepository)
		svc := admin.NewService(resources, new(MockReservationRepository), logger.NewNop())

		resources.On("UpdateStatus", testifymock.Anything, "pc-02", domain.ResourceOffline).Return(nil)

		err := svc.UpdateResourceStatus(context.Background(), "pc-02", &models.UpdateResourceStatusRequest{Status: "offline"})
		require.NoError(t, err)
		resources.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		resources := new(MockResourceRepository)
		svc := admin.NewService(resources, new(MockReservationRepository), logger.NewNop())

		err := svc.UpdateResourceStatus(context.Background(), "pc-02", &models.UpdateResourceStatusRequest{Status: "broken"})
		assert.ErrorIs(t, err, admin.ErrInvalidInput)
		resources.AssertNotCalled(t, "UpdateStatus", testifymock.Anything, testifymock.Anything, testifymock.Anything)
	})

	t.Run("unknown resource", func(t *testing.T) {
		resources := new(MockResourceRepository)
		svc := admin.NewService(resources, new(MockReservationRepository), logger.NewNop())

		resources.On("UpdateStatus", testifymock.Anything, "pc-99", domain.ResourceAvailable).
			Return(resourceRepo.ErrResourceNotFound)

		err := svc.UpdateResourceStatus(context.Background(), "pc-99", &models.UpdateResourceStatusRequest{Status: "available"})
		assert.ErrorIs(t, err, admin.ErrResourceNotFound)
	})
}

func TestService_ListReservations(t *testing.T) {
	reservations := new(MockReservationRepository)
	svc := admin.NewService(new(MockResourceRepository), reservations, logger.NewNop())

	reservations.On("GetAll", testifymock.Anything).Return([]*domain.Reservation{
		{ID: "b", Date: "2026-10-22", SlotID: domain.SlotMorning, Status: domain.ReservationConfirmed},
		{ID: "c", Date: "2026-10-21", SlotID: domain.SlotEvening, Status: domain.ReservationCancelled},
		{ID: "a", Date: "2026-10-21", SlotID: domain.SlotMorning, Status: domain.ReservationConfirmed},
	}, nil)

	resp, err := svc.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, []string{"a", "c", "b"}, []string{
		resp.Reservations[0].ID, resp.Reservations[1].ID, resp.Reservations[2].ID,
	})
}
