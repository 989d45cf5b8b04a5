package order_test

import (
	"testing"

	"eatery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for all workflow statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusCompleted,
			order.StatusCancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusCompleted,
			order.StatusCancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail on unknown string", func(t *testing.T) {
		_, err := order.StatusFromString("delivered")
		require.Error(t, err)
	})
}

func TestStatus_Advance(t *testing.T) {
	t.Run("should allow each single forward step", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.StatusPending, order.StatusConfirmed},
			{order.StatusConfirmed, order.StatusPreparing},
			{order.StatusPreparing, order.StatusReady},
			{order.StatusReady, order.StatusCompleted},
		}

		for _, step := range steps {
			next, err := step.from.Advance(step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		_, err := order.StatusPending.Advance(order.StatusPreparing)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject backward transition", func(t *testing.T) {
		_, err := order.StatusReady.Advance(order.StatusPending)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject transitions out of terminal statuses", func(t *testing.T) {
		_, err := order.StatusCompleted.Advance(order.StatusConfirmed)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.StatusCancelled.Advance(order.StatusConfirmed)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.StatusPending.Advance(order.StatusUnknown)
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		next, err := order.StatusPending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, next)
	})

	t.Run("should reject cancellation past pending", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusConfirmed,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusCompleted,
		} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, order.ErrInvalidTransition, "from %s", s)
		}
	})

	t.Run("should not be idempotent for already cancelled order", func(t *testing.T) {
		_, err := order.StatusCancelled.Cancel()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCompleted.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusConfirmed.IsTerminal())
	assert.False(t, order.StatusPreparing.IsTerminal())
	assert.False(t, order.StatusReady.IsTerminal())
}
