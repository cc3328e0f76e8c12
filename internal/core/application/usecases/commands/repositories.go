// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, mutate aggregates through repositories, commit. The deferred rollback
// is a no-op after a successful commit.
package commands

import (
	"context"

	"github.com/lax56237/Daily-Drop/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories a handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SellerOrderRepoFactory interface {
		SellerOrderRepository() ports.SellerOrderRepository
	}

	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	BuyerRepoFactory interface {
		BuyerRepository() ports.BuyerRepository
	}

	CatalogFactory interface {
		Catalog() ports.Catalog
	}

	// CartUoW is used by cart mutations. The catalog prices items added without a price.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// BuyerUoW is used by address maintenance.
	BuyerUoW interface {
		TxManager
		BuyerRepoFactory
	}

	BuyerUoWFactory interface {
		Create() BuyerUoW
	}

	// AgentUoW is used by agent registration and read-only agent checks.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// CheckoutUoW spans everything order placement writes in one transaction:
	// buyer address, order, seller orders and cart removal.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, _ := order.NewOrder(...)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   _, err = uow.SellerOrderRepository().AddAll(ctx, plan.SellerOrders)
	//   err = uow.CartRepository().Delete(ctx, buyer)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		SellerOrderRepoFactory
		BuyerRepoFactory
		CatalogFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DeliveryUoW spans an agent's assignment record and the order it moves.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		SellerOrderRepoFactory
		AgentRepoFactory
		BuyerRepoFactory
		CatalogFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
