package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mealorder/internal/core/domain/model/draft"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"
	"mealorder/internal/core/ports"
	"mealorder/internal/pkg/errs"
)

// Replies sent back to the user. Their exact wording is part of the
// observable contract of the dialog.
const (
	promptProvideAddress    = "Please provide your address"
	promptInvalidAddress    = "Invalid address, please try again"
	promptSelectionRange    = "Please provide a number between 1-3"
	promptConfirmOrContinue = "Please respond with CONFIRM or CONTINUE"
)

// maxListedCandidates caps how many candidates are shown, matching the 1-3
// selection range users answer with.
const maxListedCandidates = 3

// Conversation is the dialog state machine that turns a user's sequence of
// free-text messages into a finalized order. Each call handles one inbound
// message: it dispatches on the draft's current phase, mutates the draft,
// and returns the reply to send back.
//
// Invalid input never fails the dialog; it produces a retry prompt and
// leaves the phase unchanged. Only collaborator failures (geocoding
// transport, invariant violations) surface as errors.
//
// Example:
//
//	conv := services.NewConversation(geocoder, clock)
//	reply, finalized, err := conv.Advance(ctx, userDraft, "2")
//	if err != nil {
//	    return err
//	}
//	if finalized != nil {
//	    // CONFIRM: persist the finalized order
//	}
//	// send reply (may be empty) back to the user
type Conversation struct {
	geocoder ports.Geocoder
	clock    kernel.Clock
}

// NewConversation creates the dialog state machine with its collaborators:
// the geocoder resolving address input and the clock stamping finalized
// orders.
func NewConversation(geocoder ports.Geocoder, clock kernel.Clock) Conversation {
	return Conversation{
		geocoder: geocoder,
		clock:    clock,
	}
}

// Advance processes one inbound message against the user's draft.
//
// Returns the reply text (empty when the step has nothing to say), and, when
// the user confirmed, the finalized order built from the draft. The caller
// is responsible for persisting it and for saving the draft afterwards
// regardless of whether a transition occurred.
func (c Conversation) Advance(ctx context.Context, d *draft.Draft, message string) (string, *order.Order, error) {
	if err := d.Validate(); err != nil {
		return "", nil, err
	}

	switch d.Phase() {
	case draft.Meal:
		d.RequestAddress()
		return promptProvideAddress, nil, nil

	case draft.ProvidingAddress:
		reply, err := c.findNearbyMeals(ctx, d, message)
		return reply, nil, err

	case draft.ChoosingLocation:
		reply, err := c.chooseLocation(d, message)
		return reply, nil, err

	case draft.ChoosingMenuItem:
		// Declared phase, currently co-selected with the location.
		return "", nil, nil

	case draft.ConfirmOrContinue:
		return c.confirmOrContinue(d, message)

	default:
		return "", nil, errs.NewValueIsInvalidErrorWithCause("phase",
			fmt.Errorf("%s is not a dispatchable phase", d.Phase()))
	}
}

// findNearbyMeals treats the message as free-text address input. An address
// that does not resolve keeps the dialog in place with a retry prompt; a
// resolved one advances to location choice with the candidate listing.
func (c Conversation) findNearbyMeals(ctx context.Context, d *draft.Draft, message string) (string, error) {
	address, err := c.geocoder.ResolveAddress(ctx, message)
	if err != nil {
		return "", err
	}
	if address == nil {
		return promptInvalidAddress, nil
	}

	// TODO: integrate provider search to fill the candidate set from the
	// resolved address; until then the listing is empty.
	var locations []provider.Location
	var menuItems []provider.MenuItem

	if err := d.PresentCandidates(locations, menuItems); err != nil {
		return "", err
	}

	return formatCandidates(locations, menuItems), nil
}

// chooseLocation treats the message as a 1-based numeric selection.
// Parse failures and out-of-range selections produce the same retry prompt
// and leave the phase unchanged.
func (c Conversation) chooseLocation(d *draft.Draft, message string) (string, error) {
	selection, err := strconv.Atoi(message)
	if err != nil {
		return promptSelectionRange, nil
	}

	if err := d.ChooseLocation(selection); err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return promptSelectionRange, nil
		}
		return "", err
	}

	return "", nil
}

// confirmOrContinue handles the terminal decision. CONFIRM finalizes the
// draft into an order stamped with the current time; CONTINUE loops back to
// location choice; anything else prompts again.
func (c Conversation) confirmOrContinue(d *draft.Draft, message string) (string, *order.Order, error) {
	switch strings.ToUpper(message) {
	case "CONFIRM":
		finalized, err := order.NewOrder(d.UserID(), c.clock.Now(), d.ChosenLocation(), d.Items())
		if err != nil {
			return "", nil, err
		}
		return "", finalized, nil

	case "CONTINUE":
		if err := d.Resume(); err != nil {
			return "", nil, err
		}
		return "", nil, nil

	default:
		return promptConfirmOrContinue, nil, nil
	}
}

// formatCandidates renders the numbered candidate listing, one line per
// candidate as "<i>) <locationName>(<itemName>)".
func formatCandidates(locations []provider.Location, menuItems []provider.MenuItem) string {
	var b strings.Builder
	for i := 0; i < len(locations) && i < maxListedCandidates; i++ {
		fmt.Fprintf(&b, "%d) %s(%s)\n", i, locations[i].Name(), menuItems[i].Name())
	}
	return b.String()
}
