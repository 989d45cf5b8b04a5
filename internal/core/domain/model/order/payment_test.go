package order_test

import (
	"testing"

	"eatery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should parse known methods", func(t *testing.T) {
		card, err := order.PaymentMethodFromString("card")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCard, card)

		cash, err := order.PaymentMethodFromString("cash")
		require.NoError(t, err)
		assert.Equal(t, order.PaymentMethodCash, cash)
	})

	t.Run("should fail on unknown method", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("crypto")
		require.Error(t, err)
	})
}

func TestPaymentStatus_Transition(t *testing.T) {
	t.Run("pending can become paid", func(t *testing.T) {
		next, err := order.PaymentStatusPending.Transition(order.PaymentStatusPaid)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, next)
	})

	t.Run("pending can become failed", func(t *testing.T) {
		next, err := order.PaymentStatusPending.Transition(order.PaymentStatusFailed)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusFailed, next)
	})

	t.Run("failed payment can be retried to paid", func(t *testing.T) {
		next, err := order.PaymentStatusFailed.Transition(order.PaymentStatusPaid)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, next)
	})

	t.Run("paid is terminal", func(t *testing.T) {
		_, err := order.PaymentStatusPaid.Transition(order.PaymentStatusFailed)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.PaymentStatusPaid.Transition(order.PaymentStatusPending)
		require.Error(t, err)
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.PaymentStatusPending.Transition(order.PaymentStatusUnknown)
		require.Error(t, err)
	})
}
