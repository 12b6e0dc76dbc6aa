// Package order provides the domain entities for order management.
// It implements the Order aggregate root together with its Item value
// objects and the Status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, customer data, frozen
//     items, timestamps, and the store-managed version counter
//   - Item: an order line owned exclusively by one Order
//   - Status: the Pending/Registered lifecycle
//
// Key business rules:
//   - Orders must have a valid identifier, non-empty customer and address,
//     and at least one item at creation
//   - The item list and creation date are frozen after creation
//   - Updates may replace customer and address only with non-empty values;
//     a field cannot be cleared to empty
//   - Pending exists only in memory; every persisted order is Registered
//
// The package follows the same DDD conventions as the rest of the core:
// private fields, factory constructors with validation, and a restore
// constructor for the persistence adapters.
package order
