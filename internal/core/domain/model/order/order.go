package order

import (
	"errors"
	"fmt"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the ordering workflow. It owns the status
// and payment-status state machines and the authorization rules for mutating
// them.
//
// Order maintains these invariants:
//   - items, payment method, pickup details and ownership references are
//     immutable after creation
//   - totalAmount is computed once at creation and never recomputed
//   - the order number is assigned exactly once at creation
//   - status moves only along the workflow defined by Status; cancellation is
//     permitted from pending only
//   - paymentStatus may reach paid only while the order is not cancelled
//   - every successful transition records one LifecycleEvent
//
// Mutations are applied optimistically: the aggregate carries the version it
// was loaded with, and the repository refuses the write when the stored
// version moved in the meantime.
type Order struct {
	id           kernel.UUID
	number       OrderNumber
	userID       kernel.UUID
	restaurantID kernel.UUID
	items        []Item

	totalAmount   int64
	status        Status
	paymentStatus PaymentStatus
	paymentMethod PaymentMethod

	pickupTime       time.Time
	pickupType       PickupType
	prepTimeMinutes  int
	actualPickupTime *time.Time
	notes            string

	createdAt time.Time
	updatedAt time.Time
	version   int64

	events        []LifecycleEvent
	isConstructed bool
}

// NewOrder creates a new Order in pending status with pending payment.
//
// The caller supplies the already-computed total (from the pricing service)
// and the generated order number; NewOrder validates the inputs and records
// the order-created event. The pickup time must lie in the future relative
// to now.
func NewOrder(
	id kernel.UUID,
	number OrderNumber,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalAmount int64,
	paymentMethod PaymentMethod,
	pickupTime time.Time,
	pickupType PickupType,
	prepTimeMinutes int,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentStatusPending,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		o.setPaymentMethod(paymentMethod),
		o.setPickupTime(pickupTime, now),
		o.setPickupType(pickupType),
		o.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	o.recordEvent(EventOrderCreated, "", o.status.String(), now)
	return o, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an
// Order from storage.
type RestoreOrderParams struct {
	ID               kernel.UUID
	Number           OrderNumber
	UserID           kernel.UUID
	RestaurantID     kernel.UUID
	Items            []Item
	TotalAmount      int64
	Status           Status
	PaymentStatus    PaymentStatus
	PaymentMethod    PaymentMethod
	PickupTime       time.Time
	PickupType       PickupType
	PrepTimeMinutes  int
	ActualPickupTime *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int64
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules (the pickup time of a stored order may be in the past)
// and without recording events.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Number.Validate(),
		params.UserID.Validate(),
		params.RestaurantID.Validate(),
		params.Status.Validate(),
		params.PaymentStatus.Validate(),
		params.PaymentMethod.Validate(),
		params.PickupType.Validate(),
	); err != nil {
		return nil, err
	}

	if len(params.Items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for idx, item := range params.Items {
		if err := item.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("orderVersion")
	}

	items := make([]Item, len(params.Items))
	copy(items, params.Items)

	return &Order{
		id:               params.ID,
		number:           params.Number,
		userID:           params.UserID,
		restaurantID:     params.RestaurantID,
		items:            items,
		totalAmount:      params.TotalAmount,
		status:           params.Status,
		paymentStatus:    params.PaymentStatus,
		paymentMethod:    params.PaymentMethod,
		pickupTime:       params.PickupTime,
		pickupType:       params.PickupType,
		prepTimeMinutes:  params.PrepTimeMinutes,
		actualPickupTime: params.ActualPickupTime,
		notes:            params.Notes,
		createdAt:        params.CreatedAt,
		updatedAt:        params.UpdatedAt,
		version:          params.Version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() OrderNumber {
	return o.number
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total in minor currency units, fixed at creation.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method chosen at creation.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PickupTime returns the requested pickup time.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// PickupType returns how the customer receives the order.
func (o *Order) PickupType() PickupType {
	return o.pickupType
}

// PrepTimeMinutes returns the preparation estimate derived from the
// restaurant's average at creation time.
func (o *Order) PrepTimeMinutes() int {
	return o.prepTimeMinutes
}

// ActualPickupTime returns when the order was picked up, or nil while it is
// not completed.
func (o *Order) ActualPickupTime() *time.Time {
	if o.actualPickupTime == nil {
		return nil
	}
	t := *o.actualPickupTime
	return &t
}

// Notes returns the free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with (1 for a new order).
func (o *Order) Version() int64 {
	return o.version
}

// CanBeViewedBy reports whether the actor may read this order.
// Customers see only their own orders; admins see everything.
func (o *Order) CanBeViewedBy(actor kernel.Actor) bool {
	return actor.IsAdmin() || actor.UserID().IsEqual(o.userID)
}

// Advance moves the order one step forward in the kitchen workflow.
//
// Only restaurant owners and admins may advance orders; other actors fail
// with a ForbiddenError. Illegal steps fail with ErrInvalidTransition.
// Advancing to completed records the actual pickup time.
func (o *Order) Advance(actor kernel.Actor, target Status, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.CanManageOrders() {
		return errs.NewForbiddenErrorWithCause(
			"advance order", fmt.Errorf("role %s may not advance orders", actor.Role()))
	}

	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	if newStatus == StatusCompleted {
		pickedUpAt := now
		o.actualPickupTime = &pickedUpAt
	}
	o.touch(now)
	o.recordEvent(EventStatusChanged, previous.String(), newStatus.String(), now)
	return nil
}

// Cancel moves a pending order to cancelled.
//
// Only the owning customer or an admin may cancel; other actors fail with a
// ForbiddenError. Orders past pending, including already cancelled ones,
// fail with ErrInvalidTransition.
func (o *Order) Cancel(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	ownedByActor := actor.Role() == kernel.RoleCustomer && actor.UserID().IsEqual(o.userID)
	if !actor.IsAdmin() && !ownedByActor {
		return errs.NewForbiddenErrorWithCause(
			"cancel order", fmt.Errorf("user %s does not own order %s", actor.UserID(), o.id))
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	o.touch(now)
	o.recordEvent(EventStatusChanged, previous.String(), newStatus.String(), now)
	return nil
}

// RecordPayment applies the outcome reported by the payment processor.
//
// A cancelled order can never become paid; that and any other illegal
// payment transition fail with ErrInvalidTransition.
func (o *Order) RecordPayment(outcome PaymentStatus, now time.Time) error {
	if outcome == PaymentStatusPaid && o.status == StatusCancelled {
		return fmt.Errorf("%w: cancelled order cannot become paid", ErrInvalidTransition)
	}

	newPaymentStatus, err := o.paymentStatus.Transition(outcome)
	if err != nil {
		return err
	}

	previous := o.paymentStatus
	o.paymentStatus = newPaymentStatus
	o.touch(now)
	o.recordEvent(EventPaymentStatusChanged, previous.String(), newPaymentStatus.String(), now)
	return nil
}

// PullEvents returns the lifecycle events recorded since the last call and
// clears the buffer. The application layer publishes them after a successful
// commit.
func (o *Order) PullEvents() []LifecycleEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) recordEvent(kind EventKind, previous string, next string, at time.Time) {
	o.events = append(o.events, LifecycleEvent{
		Kind:           kind,
		OrderID:        o.id,
		OrderNumber:    o.number.String(),
		PreviousStatus: previous,
		NewStatus:      next,
		OccurredAt:     at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%d is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPickupTime(pickupTime time.Time, now time.Time) error {
	if !pickupTime.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupTime", fmt.Errorf("%s is not in the future", pickupTime.Format(time.RFC3339)))
	}
	o.pickupTime = pickupTime
	return nil
}

func (o *Order) setPickupType(pickupType PickupType) error {
	if err := pickupType.Validate(); err != nil {
		return err
	}
	o.pickupType = pickupType
	return nil
}

func (o *Order) setPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedPreparationTime", fmt.Errorf("%d is negative", minutes))
	}
	o.prepTimeMinutes = minutes
	return nil
}
