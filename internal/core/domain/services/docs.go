// Package services provides domain services that work across aggregates of the
// fulfilment domain.
//
// The package includes:
//   - FanOutPlanner: splits an order into per-seller SellerOrders and records the items it could not route
//   - OrderSheetBuilder: joins an order with its buyer, products and sellers into an agent.OrderSheet
//
// Both services are pure: callers load the inputs through ports and persist the results.
package services
