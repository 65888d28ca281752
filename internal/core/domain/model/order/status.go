package order

import (
	"fmt"

	"mealorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a meal order.
// It implements a state machine with defined transitions so orders follow
// the correct fulfillment workflow.
//
// State transitions:
//
//	Open ──> Ordered
//	  ↑         │
//	  └─────────┘
//	 (reset of an abandoned fulfillment)
//
// While a worker is fulfilling an order, the order stays Open and is guarded
// by an expiring lock instead of a dedicated status; the lock is not part of
// this state machine.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is placed.
	// Open orders are the candidate pool for fulfillment workers.
	Open

	// Ordered indicates the order has been passed to a provider.
	// Orders leave the fulfillment candidate pool permanently.
	Ordered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Ordered: "Ordered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:    "Open",
		Ordered: "Ordered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Open and Ordered; Unknown (0) and any other values
// are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Ordered.
//
// Valid transitions:
//   - Open -> Ordered (fulfillment finished)
//
// Returns an error for any other starting status: completion is monotonic
// within an acquisition cycle and an already Ordered order cannot be
// completed again.
func (s Status) Complete() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Ordered, nil
}

// Reopen transitions the status back to Open, making the order eligible for
// acquisition again after an abandoned fulfillment attempt.
//
// Valid transitions:
//   - Open -> Open (reset while still open, the common case)
//   - Ordered -> Open (operator correction)
func (s Status) Reopen() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Open, nil
}
