// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mealorder/internal/core/ports"
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

	// DraftRepoFactory provides access to the draft repository within a transaction.
	DraftRepoFactory interface {
		DraftRepository() ports.DraftRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the fulfillment commands, which never touch drafts.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DraftUoW manages transactions for draft-only operations.
	// Used by maintenance commands such as idle-draft purging.
	DraftUoW interface {
		TxManager
		DraftRepoFactory
	}

	// DraftUoWFactory creates new draft unit of work instances.
	DraftUoWFactory interface {
		Create() DraftUoW
	}

	// UoW manages transactions across both draft and order aggregates.
	// Used by message processing, where confirming a draft persists a new
	// order and the updated draft in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   draftRepo := uow.DraftRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DraftRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
