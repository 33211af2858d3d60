package cmd

import (
	"gorm.io/gorm"

	"pickuphub/internal/adapters/out/postgres"
	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/application/usecases/queries"
	"pickuphub/internal/pkg/clock"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
	}
}

func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignPositionCommandHandler() commands.AssignPositionCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPositionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAddPositionCommandHandler() commands.AddPositionCommandHandler {
	var f commands.PositionUoWFactory = FuncPositionUoWFactory(func() commands.PositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPositionCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStaffCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAuthenticateStaffCommandHandler() commands.AuthenticateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindOrdersByPhoneQueryHandler() queries.FindOrdersByPhoneQueryHandler {
	return queries.NewFindOrdersByPhoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByDayQueryHandler() queries.CountOrdersByDayQueryHandler {
	return queries.NewCountOrdersByDayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFreePositionsQueryHandler() queries.ListFreePositionsQueryHandler {
	return queries.NewListFreePositionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSuggestPositionQueryHandler() queries.SuggestPositionQueryHandler {
	return queries.NewSuggestPositionQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPositionUoWFactory func() commands.PositionUoW

func (f FuncPositionUoWFactory) Create() commands.PositionUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}
