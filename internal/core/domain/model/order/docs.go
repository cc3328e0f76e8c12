// Package order provides the Order aggregate and the delivery status state machine
// shared by orders and seller orders.
//
// The package includes:
//   - Order: the buyer's placed order, immutable except for its delivery status and fan-out bookkeeping
//   - Item: the snapshot of one cart line taken at placement
//   - Status: the forward-only state machine Ready -> OnDelivery -> Delivered
//
// Key business rules:
//   - An order is created in Ready with at least one item
//   - Status only moves forward, one step at a time, and Delivered is terminal
//   - Items that could not be routed to a seller are recorded as dropped and the
//     order is flagged for reconciliation until every dropped item is routed
package order
