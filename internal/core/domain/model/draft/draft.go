package draft

import (
	"errors"
	"fmt"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"
	"mealorder/internal/pkg/errs"
)

const (
	// minSelection and maxSelection bound the 1-based index users type when
	// choosing among listed candidates.
	minSelection = 1
	maxSelection = 3
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft instance was not created
	// through NewDraft or RestoreDraft.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

	// ErrCandidatesMisaligned is returned when the candidate location and menu
	// item lists differ in length; the lists must stay index-aligned 1:1.
	ErrCandidatesMisaligned = errors.New("candidate locations and menu items must be index-aligned")

	// ErrNotAwaitingResume is returned when Resume is called outside the
	// ConfirmOrContinue phase.
	ErrNotAwaitingResume = errors.New("draft is not awaiting confirmation")
)

// Draft is the single in-progress order of one user, mutated message by
// message as the ordering dialog advances. Exactly one draft per user is
// addressable by user identity.
//
// Invariants:
//   - The candidate location list and candidate menu item list, when present,
//     are index-aligned 1:1 and addressed by the same 1-based user input
//   - A chosen location always comes from the candidate list
//   - Line items accumulate; CONTINUE loops back to add more
type Draft struct {
	userID kernel.ID
	phase  Phase

	// candidate lists, index-aligned (menuItems[i] is the item offered at
	// locations[i])
	locations []provider.Location
	menuItems []provider.MenuItem

	chosenLocation *provider.Location
	items          []order.Item

	isConstructed bool
}

// NewDraft creates the draft for a user's fresh dialog, starting in the
// Meal phase.
func NewDraft(userID kernel.ID) (*Draft, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}

	return &Draft{
		userID:        userID,
		phase:         Meal,
		isConstructed: true,
	}, nil
}

// RestoreDraft reconstructs a draft from persistence.
func RestoreDraft(
	userID kernel.ID,
	phase Phase,
	locations []provider.Location,
	menuItems []provider.MenuItem,
	chosenLocation *provider.Location,
	items []order.Item,
) (*Draft, error) {
	if err := errors.Join(userID.Validate(), phase.Validate()); err != nil {
		return nil, err
	}
	if len(locations) != len(menuItems) {
		return nil, ErrCandidatesMisaligned
	}

	return &Draft{
		userID:         userID,
		phase:          phase,
		locations:      locations,
		menuItems:      menuItems,
		chosenLocation: chosenLocation,
		items:          items,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Draft instance was properly constructed.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identity.
func (d *Draft) UserID() kernel.ID {
	return d.userID
}

// Phase returns the current dialog phase.
func (d *Draft) Phase() Phase {
	return d.phase
}

// Locations returns the candidate provider locations.
func (d *Draft) Locations() []provider.Location {
	return d.locations
}

// MenuItems returns the candidate menu items, index-aligned with Locations.
func (d *Draft) MenuItems() []provider.MenuItem {
	return d.menuItems
}

// ChosenLocation returns the location picked by the user, or nil.
func (d *Draft) ChosenLocation() *provider.Location {
	return d.chosenLocation
}

// Items returns the line items accumulated so far.
func (d *Draft) Items() []order.Item {
	return d.items
}

// RequestAddress advances a fresh dialog to the address-collection phase.
// The triggering message content is irrelevant; any first message moves the
// dialog forward.
func (d *Draft) RequestAddress() {
	d.phase = ProvidingAddress
}

// PresentCandidates records the candidate locations with their index-aligned
// menu items and advances to the location-choosing phase. The two lists must
// have equal length.
func (d *Draft) PresentCandidates(locations []provider.Location, menuItems []provider.MenuItem) error {
	if len(locations) != len(menuItems) {
		return ErrCandidatesMisaligned
	}

	d.locations = locations
	d.menuItems = menuItems
	d.phase = ChoosingLocation
	return nil
}

// ChooseLocation records the user's 1-based selection: the chosen location
// is remembered and one line item (quantity 1, unit price of the offered
// menu item) is appended, then the dialog advances to confirmation.
//
// A selection outside 1..3 or beyond the candidate list is rejected with a
// ValueIsOutOfRangeError; the caller treats all selection failures alike.
func (d *Draft) ChooseLocation(selection int) error {
	if selection < minSelection || selection > maxSelection || selection > len(d.locations) {
		return errs.NewValueIsOutOfRangeError("selection", selection, minSelection, maxSelection)
	}

	location := d.locations[selection-1]
	menuItem := d.menuItems[selection-1]

	item, err := order.NewItem(1, menuItem.Price(), menuItem)
	if err != nil {
		return err
	}

	d.chosenLocation = &location
	d.items = append(d.items, item)
	d.phase = ConfirmOrContinue
	return nil
}

// Resume loops a confirmed-or-continue dialog back to location choice so the
// user can add another meal.
func (d *Draft) Resume() error {
	if d.phase != ConfirmOrContinue {
		return fmt.Errorf("%w: phase is %s", ErrNotAwaitingResume, d.phase)
	}

	d.phase = ChoosingLocation
	return nil
}
