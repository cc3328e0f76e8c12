// Package agent provides the DeliveryAgent aggregate: the agent's identity and
// its assignment record.
//
// The assignment record (status, active order, cached order sheet and pending
// completion code) is always mutated as one unit. Key business rules:
//   - An agent holds at most one active order and only while OnDelivery
//   - A ready agent has no active order, no order sheet and no pending code
//   - Issuing a completion code replaces any earlier unconfirmed code; codes never expire
//   - A wrong code changes nothing and can be retried without limit
//   - An agent that is OnDelivery without both an active order and an order sheet
//     is in a corrupted state and is healed by resetting it to Ready
package agent
