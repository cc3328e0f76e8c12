// Package cart provides the buyer's basket aggregate.
//
// A Cart is keyed by the buyer email and holds lines unique by item name.
// Repeated additions of the same name merge into one line, and the total is
// always recomputed as the sum of quantity times unit price over the current
// lines, so it can never drift from the items it describes.
//
// A cart is ephemeral: it is created by the first addition and destroyed when
// an order is placed from it.
package cart
