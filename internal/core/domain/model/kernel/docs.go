// Package kernel provides core domain primitives and utilities for the
// meal-order system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - ID: A value object for numeric database-assigned identifiers
//   - Address: A value object for a geocoded street address
//   - Clock: An injectable time source with an explicit time zone, plus the
//     calendar-day window computation used by quota evaluation
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
