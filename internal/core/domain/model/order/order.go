package order

import (
	"errors"
	"fmt"
	"time"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/provider"
	"mealorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when persistence tries to assign an
	// identity to an order that already has one.
	ErrOrderIDAlreadyAssigned = errors.New("order identity is already assigned")
)

// Order represents a meal order in the system. It is the aggregate root that
// manages the order lifecycle from placement through fulfillment.
//
// Order follows these invariants:
//   - Must belong to a valid user
//   - Is created Open with a timestamp (current time when the caller omits one)
//   - Status transitions are monotonic per acquisition cycle:
//     Open -> Ordered via Complete, or back to Open via Reopen
//   - The subtotal equals the sum of line totals
//   - The identity is assigned exactly once, by persistence
//
// The fulfillment lock key ("order:<id>") is derived purely from the numeric
// identity; an order without an assigned identity yields an empty key and
// must never be locked.
type Order struct {
	// id is the database-assigned identity; zero until first persisted
	id kernel.ID

	// userID is the owning user's identity
	userID kernel.ID

	// status is the current state in the order lifecycle
	status Status

	// orderDate is when the order was placed
	orderDate time.Time

	// location is the chosen provider location (nil when not yet chosen)
	location *provider.Location

	// items are the ordered lines
	items []Item

	// subTotal is the sum of amount x quantity over items
	subTotal float64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new open order for a user. The identity stays
// unassigned until the order is persisted.
//
// Parameters:
//   - userID: the owning user (must be a valid identity)
//   - orderDate: when the order was placed; the zero value means "now"
//   - location: the chosen provider location, or nil
//   - items: ordered lines (each must be constructed via NewItem)
//
// The subtotal is computed from the items. The order starts in Open status.
func NewOrder(userID kernel.ID, orderDate time.Time, location *provider.Location, items []Item) (*Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		userID:        userID,
		status:        Open,
		orderDate:     orderDate,
		location:      location,
		items:         items,
		subTotal:      sumTotals(items),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, bypassing creation
// defaults but still checking the invariants that persistence must uphold.
func RestoreOrder(
	id kernel.ID,
	userID kernel.ID,
	status Status,
	orderDate time.Time,
	location *provider.Location,
	items []Item,
	subTotal float64,
) (*Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		status:        status,
		orderDate:     orderDate,
		location:      location,
		items:         items,
		subTotal:      subTotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity. Orders without an assigned
// identity are never equal to anything.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

// ID returns the order's identity; zero until the order is persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// UserID returns the owning user's identity.
func (o *Order) UserID() kernel.ID {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Location returns the chosen provider location, or nil.
func (o *Order) Location() *provider.Location {
	return o.location
}

// Items returns the ordered lines.
func (o *Order) Items() []Item {
	return o.items
}

// SubTotal returns the sum of amount x quantity over the ordered lines.
func (o *Order) SubTotal() float64 {
	return o.subTotal
}

// LockKey returns the fulfillment lock key for this order, derived purely
// from the numeric identity. An unpersisted order yields an empty key;
// callers must never attempt to lock such an order.
func (o *Order) LockKey() string {
	if o == nil || o.id.IsZero() {
		return ""
	}
	return LockKeyFor(o.id)
}

// LockKeyFor derives the fulfillment lock key for an order identity.
// Read paths that only have raw ids use this to probe lock state without
// loading the aggregate.
func LockKeyFor(id kernel.ID) string {
	return fmt.Sprintf("order:%d", id.Int64())
}

// AssignID records the database-assigned identity after the first insert.
// Assigning twice is an error: identity is immutable once set.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// Complete marks the order as passed to the provider (Ordered).
// Valid only from Open status; Ordered is final for the acquisition path.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reopen returns the order to the Open candidate pool after an abandoned
// fulfillment attempt.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func sumTotals(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
