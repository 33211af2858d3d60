// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pickuphub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PositionRepoFactory provides access to the position repository within a transaction.
	PositionRepoFactory interface {
		PositionRepository() ports.PositionRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by registration and lifecycle transition commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PositionUoW manages transactions for position-only operations.
	PositionUoW interface {
		TxManager
		PositionRepoFactory
	}

	// PositionUoWFactory creates new position unit of work instances.
	PositionUoWFactory interface {
		Create() PositionUoW
	}

	// StaffUoW manages transactions for staff account operations.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// AllocationUoW manages transactions spanning order and position
	// aggregates. Used by the position assignment command, which must keep
	// the volume reference and the slot's occupancy flag consistent within
	// one transaction.
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		PositionRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}
)
