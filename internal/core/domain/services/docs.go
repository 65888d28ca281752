// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the meal-order system.
// It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - Conversation: The dialog state machine converting a user's free-text
//     messages into a finalized order
//   - QuotaPolicy: The daily-quota predicates derived from a user's orders
//     and active activation codes
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
