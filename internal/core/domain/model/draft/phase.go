package draft

import (
	"fmt"

	"mealorder/internal/pkg/errs"
)

// Phase represents the current step of a user's ordering dialog.
// The conversation machine dispatches on the phase of the user's draft and
// advances it as the dialog progresses.
//
// Phase progression:
//
//	Meal ──> ProvidingAddress ──> ChoosingLocation ──> ConfirmOrContinue
//	                                     ↑                    │
//	                                     └────────────────────┘
//	                                      (CONTINUE adds another meal)
//
// ChoosingMenuItem is declared but currently unreachable: the menu item is
// co-selected with the location. It is kept as a placeholder for a future
// split of the two choices.
type Phase int

const (
	// UnknownPhase represents an invalid or undefined phase.
	UnknownPhase Phase = iota

	// Meal is the initial phase of a fresh dialog: the user has asked for
	// a meal and must next be prompted for an address.
	Meal

	// ProvidingAddress means the user was prompted for their address and the
	// next message is treated as free-text address input.
	ProvidingAddress

	// ChoosingLocation means candidates were listed and the next message is
	// treated as a 1-based numeric selection.
	ChoosingLocation

	// ChoosingMenuItem is a declared placeholder; the menu item is currently
	// chosen together with the location.
	ChoosingMenuItem

	// ConfirmOrContinue means the user must confirm the order or continue
	// adding meals.
	ConfirmOrContinue
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		UnknownPhase:      "Unknown",
		Meal:              "Meal",
		ProvidingAddress:  "ProvidingAddress",
		ChoosingLocation:  "ChoosingLocation",
		ChoosingMenuItem:  "ChoosingMenuItem",
		ConfirmOrContinue: "ConfirmOrContinue",
	}
}

func getValidPhaseStrings() map[Phase]string {
	//nolint:exhaustive // UnknownPhase is intentionally excluded as it's invalid
	return map[Phase]string{
		Meal:              "Meal",
		ProvidingAddress:  "ProvidingAddress",
		ChoosingLocation:  "ChoosingLocation",
		ChoosingMenuItem:  "ChoosingMenuItem",
		ConfirmOrContinue: "ConfirmOrContinue",
	}
}

// Validate checks if the Phase value is valid.
func (p Phase) Validate() error {
	if _, ok := getValidPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// String returns the human-readable name of the phase.
// Implements fmt.Stringer and is safe to call on any Phase value.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
