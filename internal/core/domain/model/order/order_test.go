package order_test

import (
	"testing"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, 500, nil, "")
	require.NoError(t, err)
	return []order.Item{item}
}

func newTestOrder(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateOrderNumber(testNow),
		ownerID,
		kernel.NewUUID(),
		testItems(t),
		1500,
		order.PaymentMethodCard,
		testNow.Add(time.Hour),
		order.PickupTypeTakeaway,
		20,
		"",
		testNow,
	)
	require.NoError(t, err)
	return o
}

func customerActor(t *testing.T, userID kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(userID, kernel.RoleCustomer)
	require.NoError(t, err)
	return actor
}

func ownerActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleRestaurantOwner)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func TestNewOrder(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("should create pending order with pending payment", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
		assert.Equal(t, int64(1500), o.TotalAmount())
		assert.Equal(t, int64(1), o.Version())
		assert.True(t, o.UserID().IsEqual(ownerID))
		assert.Nil(t, o.ActualPickupTime())
		assert.Equal(t, testNow, o.CreatedAt())
		assert.Equal(t, testNow, o.UpdatedAt())
	})

	t.Run("should record order created event", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		events := o.PullEvents()

		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderCreated, events[0].Kind)
		assert.Equal(t, "pending", events[0].NewStatus)
		assert.Equal(t, o.Number().String(), events[0].OrderNumber)
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateOrderNumber(testNow),
			ownerID,
			kernel.NewUUID(),
			nil,
			1000,
			order.PaymentMethodCash,
			testNow.Add(time.Hour),
			order.PickupTypeDineIn,
			15,
			"",
			testNow,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with pickup time in the past", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateOrderNumber(testNow),
			ownerID,
			kernel.NewUUID(),
			testItems(t),
			1000,
			order.PaymentMethodCard,
			testNow.Add(-time.Minute),
			order.PickupTypeTakeaway,
			15,
			"",
			testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickupTime")
	})

	t.Run("should fail with invalid payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateOrderNumber(testNow),
			ownerID,
			kernel.NewUUID(),
			testItems(t),
			1000,
			order.PaymentMethodUnknown,
			testNow.Add(time.Hour),
			order.PickupTypeTakeaway,
			15,
			"",
			testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("should fail with negative total", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateOrderNumber(testNow),
			ownerID,
			kernel.NewUUID(),
			testItems(t),
			-100,
			order.PaymentMethodCard,
			testNow.Add(time.Hour),
			order.PickupTypeTakeaway,
			15,
			"",
			testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(
			invalidID,
			order.GenerateOrderNumber(testNow),
			ownerID,
			kernel.NewUUID(),
			nil,
			-1,
			order.PaymentMethodCard,
			testNow.Add(time.Hour),
			order.PickupTypeTakeaway,
			15,
			"",
			testNow,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "totalAmount")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Advance(t *testing.T) {
	ownerID := kernel.NewUUID()
	later := testNow.Add(5 * time.Minute)

	t.Run("restaurant owner advances pending to confirmed", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		o.PullEvents()

		err := o.Advance(ownerActor(t), order.StatusConfirmed, later)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, later, o.UpdatedAt())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventStatusChanged, events[0].Kind)
		assert.Equal(t, "pending", events[0].PreviousStatus)
		assert.Equal(t, "confirmed", events[0].NewStatus)
	})

	t.Run("admin advances through the whole workflow", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		admin := adminActor(t)

		for _, target := range []order.Status{
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusCompleted,
		} {
			require.NoError(t, o.Advance(admin, target, later))
		}

		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.ActualPickupTime())
		assert.Equal(t, later, *o.ActualPickupTime())
	})

	t.Run("customer may not advance", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		err := o.Advance(customerActor(t, ownerID), order.StatusConfirmed, later)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("skipping a step fails", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		err := o.Advance(ownerActor(t), order.StatusReady, later)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("unconstructed actor fails", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		var actor kernel.Actor

		err := o.Advance(actor, order.StatusConfirmed, later)

		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	ownerID := kernel.NewUUID()
	later := testNow.Add(5 * time.Minute)

	t.Run("owning customer cancels pending order", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		o.PullEvents()

		err := o.Cancel(customerActor(t, ownerID), later)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "cancelled", events[0].NewStatus)
	})

	t.Run("admin cancels any pending order", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		require.NoError(t, o.Cancel(adminActor(t), later))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("another customer may not cancel", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		err := o.Cancel(customerActor(t, kernel.NewUUID()), later)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("restaurant owner may not cancel", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		err := o.Cancel(ownerActor(t), later)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("confirmed order cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		require.NoError(t, o.Advance(adminActor(t), order.StatusConfirmed, later))

		err := o.Cancel(customerActor(t, ownerID), later)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		require.NoError(t, o.Cancel(customerActor(t, ownerID), later))

		err := o.Cancel(customerActor(t, ownerID), later)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	ownerID := kernel.NewUUID()
	later := testNow.Add(5 * time.Minute)

	t.Run("pending payment becomes paid", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		o.PullEvents()

		err := o.RecordPayment(order.PaymentStatusPaid, later)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventPaymentStatusChanged, events[0].Kind)
		assert.Equal(t, "pending", events[0].PreviousStatus)
		assert.Equal(t, "paid", events[0].NewStatus)
	})

	t.Run("failed payment can be retried", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		require.NoError(t, o.RecordPayment(order.PaymentStatusFailed, later))

		err := o.RecordPayment(order.PaymentStatusPaid, later)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
	})

	t.Run("cancelled order cannot become paid", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		require.NoError(t, o.Cancel(customerActor(t, ownerID), later))

		err := o.RecordPayment(order.PaymentStatusPaid, later)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus())
	})

	t.Run("paid is terminal", func(t *testing.T) {
		o := newTestOrder(t, ownerID)
		require.NoError(t, o.RecordPayment(order.PaymentStatusPaid, later))

		err := o.RecordPayment(order.PaymentStatusFailed, later)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_CanBeViewedBy(t *testing.T) {
	ownerID := kernel.NewUUID()
	o := newTestOrder(t, ownerID)

	assert.True(t, o.CanBeViewedBy(customerActor(t, ownerID)))
	assert.True(t, o.CanBeViewedBy(adminActor(t)))
	assert.False(t, o.CanBeViewedBy(customerActor(t, kernel.NewUUID())))
}

func TestOrder_PullEvents(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("drains the event buffer", func(t *testing.T) {
		o := newTestOrder(t, ownerID)

		first := o.PullEvents()
		second := o.PullEvents()

		assert.Len(t, first, 1)
		assert.Empty(t, second)
	})
}

func TestRestoreOrder(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("should rehydrate persisted state without events", func(t *testing.T) {
		original := newTestOrder(t, ownerID)

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              original.ID(),
			Number:          original.Number(),
			UserID:          original.UserID(),
			RestaurantID:    original.RestaurantID(),
			Items:           original.Items(),
			TotalAmount:     original.TotalAmount(),
			Status:          order.StatusPreparing,
			PaymentStatus:   order.PaymentStatusPaid,
			PaymentMethod:   original.PaymentMethod(),
			PickupTime:      original.PickupTime(),
			PickupType:      original.PickupType(),
			PrepTimeMinutes: original.PrepTimeMinutes(),
			CreatedAt:       original.CreatedAt(),
			UpdatedAt:       original.UpdatedAt(),
			Version:         7,
		})

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, order.StatusPreparing, restored.Status())
		assert.Equal(t, order.PaymentStatusPaid, restored.PaymentStatus())
		assert.Equal(t, int64(7), restored.Version())
		assert.Empty(t, restored.PullEvents())
	})

	t.Run("should allow pickup time in the past", func(t *testing.T) {
		original := newTestOrder(t, ownerID)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              original.ID(),
			Number:          original.Number(),
			UserID:          original.UserID(),
			RestaurantID:    original.RestaurantID(),
			Items:           original.Items(),
			TotalAmount:     original.TotalAmount(),
			Status:          order.StatusCompleted,
			PaymentStatus:   order.PaymentStatusPaid,
			PaymentMethod:   original.PaymentMethod(),
			PickupTime:      testNow.Add(-24 * time.Hour),
			PickupType:      original.PickupType(),
			PrepTimeMinutes: original.PrepTimeMinutes(),
			CreatedAt:       original.CreatedAt(),
			UpdatedAt:       original.UpdatedAt(),
			Version:         3,
		})

		require.NoError(t, err)
	})

	t.Run("should fail with invalid version", func(t *testing.T) {
		original := newTestOrder(t, ownerID)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              original.ID(),
			Number:          original.Number(),
			UserID:          original.UserID(),
			RestaurantID:    original.RestaurantID(),
			Items:           original.Items(),
			TotalAmount:     original.TotalAmount(),
			Status:          order.StatusPending,
			PaymentStatus:   order.PaymentStatusPending,
			PaymentMethod:   original.PaymentMethod(),
			PickupTime:      original.PickupTime(),
			PickupType:      original.PickupType(),
			PrepTimeMinutes: original.PrepTimeMinutes(),
			CreatedAt:       original.CreatedAt(),
			UpdatedAt:       original.UpdatedAt(),
			Version:         0,
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		original := newTestOrder(t, ownerID)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              original.ID(),
			Number:          original.Number(),
			UserID:          original.UserID(),
			RestaurantID:    original.RestaurantID(),
			TotalAmount:     original.TotalAmount(),
			Status:          order.StatusPending,
			PaymentStatus:   order.PaymentStatusPending,
			PaymentMethod:   original.PaymentMethod(),
			PickupTime:      original.PickupTime(),
			PickupType:      original.PickupType(),
			PrepTimeMinutes: original.PrepTimeMinutes(),
			CreatedAt:       original.CreatedAt(),
			UpdatedAt:       original.UpdatedAt(),
			Version:         1,
		})

		require.Error(t, err)
	})
}
