// Package kernel provides the shared value objects of the fulfilment domain.
//
// The package includes:
//   - UUID: identifier of orders, seller orders, agents, products and sellers
//   - Money: a non-negative decimal amount in rupees
//   - Email: the normalized buyer identity that keys carts and orders
//   - Address: the delivery address captured at placement and copied onto seller orders
//
// All values are immutable and validated on construction. A zero value is never valid,
// so aggregates call Validate on incoming values before storing them.
package kernel
