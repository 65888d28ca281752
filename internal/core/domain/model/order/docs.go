// Package order provides domain entities and business logic for meal-order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A line item carrying the chosen menu item, quantity, and unit price
//
// Key business rules:
//   - Orders belong to a user and are created in Open status with a timestamp
//   - Fulfillment moves an order Open -> Ordered via Complete
//   - An abandoned fulfillment attempt returns the order to Open via Reopen
//   - The subtotal is the sum of amount x quantity over all line items
//   - The fulfillment lock key is derived from the numeric identity; orders
//     without an assigned identity must never be locked
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
