// Package draft provides the per-user partial order that backs the
// conversational ordering dialog.
//
// The package includes:
//   - Draft: One user's in-progress order, mutated message by message
//   - Phase: A state machine of the dialog steps
//
// Key business rules:
//   - Exactly one draft per user, addressable by user identity
//   - Candidate location and menu item lists stay index-aligned 1:1 and are
//     addressed by the same 1-based user-facing index
//   - Choosing a location appends one line item with quantity 1 at the
//     offered menu item's price
//   - Confirmation is terminal for a draft; CONTINUE loops back to choose
//     another location
package draft
