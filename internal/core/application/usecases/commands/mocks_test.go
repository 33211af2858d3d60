package commands_test

import (
	"context"
	"testing"
	"time"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/core/domain/model/position"
	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// validRestoredOrder builds a Received order with a single volume, the way
// a repository would return it.
func validRestoredOrder(t *testing.T, code string) *order.Order {
	t.Helper()

	recipient, err := order.NewRecipient("Maria Souza", "123.456.789-00", "+55 11 98888-0000")
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	aggregate, err := order.NewOrder(orderID, code, order.ChannelManual, recipient, "", nil,
		time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	volume, err := order.NewVolume(kernel.NewUUID(), code+"-VOL-0001", nil, "")
	require.NoError(t, err)
	require.NoError(t, aggregate.AddVolume(volume))

	return aggregate
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByVolumeID(ctx context.Context, volumeID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, volumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) Add(ctx context.Context, aggregate *position.Position) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPositionRepository) Update(ctx context.Context, aggregate *position.Position) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPositionRepository) Get(ctx context.Context, id kernel.UUID) (*position.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*position.Position), args.Error(1)
}

func (m *MockPositionRepository) ListAll(ctx context.Context) ([]*position.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*position.Position), args.Error(1)
}

func (m *MockPositionRepository) SuggestAvailable(ctx context.Context) (*position.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*position.Position), args.Error(1)
}

func (m *MockPositionRepository) Occupy(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPositionRepository) Release(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPositionUoW struct{ mock.Mock }

func (m *MockPositionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPositionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPositionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPositionUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockPositionUoWFactory struct{ mock.Mock }

func (m *MockPositionUoWFactory) Create() commands.PositionUoW {
	args := m.Called()
	return args.Get(0).(commands.PositionUoW)
}

type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockAllocationUoW struct{ mock.Mock }

func (m *MockAllocationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAllocationUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}
