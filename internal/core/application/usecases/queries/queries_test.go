package queries_test

import (
	"testing"

	"eatery/internal/core/application/usecases/queries"
	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID, testActor(t, kernel.RoleCustomer))

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with unconstructed actor", func(t *testing.T) {
		var actor kernel.Actor

		_, err := queries.NewGetOrderQuery(kernel.NewUUID(), actor)

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		require.Error(t, query.Validate())
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should normalize paging defaults", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(testActor(t, kernel.RoleCustomer), nil, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, queries.DefaultPageSize, query.PageSize())
	})

	t.Run("should cap the page size", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(testActor(t, kernel.RoleAdmin), nil, 2, 1000)

		require.NoError(t, err)
		assert.Equal(t, queries.MaxPageSize, query.PageSize())
	})

	t.Run("should keep a valid status filter", func(t *testing.T) {
		status := order.StatusPending

		query, err := queries.NewListOrdersQuery(testActor(t, kernel.RoleAdmin), &status, 1, 10)

		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.StatusPending, *query.Status())
	})

	t.Run("should reject an invalid status filter", func(t *testing.T) {
		status := order.StatusUnknown

		_, err := queries.NewListOrdersQuery(testActor(t, kernel.RoleAdmin), &status, 1, 10)

		require.Error(t, err)
	})
}

func TestNewGetRestaurantRatingQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		query, err := queries.NewGetRestaurantRatingQuery(restaurantID)

		require.NoError(t, err)
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("should fail with unconstructed restaurant ID", func(t *testing.T) {
		var restaurantID kernel.UUID

		_, err := queries.NewGetRestaurantRatingQuery(restaurantID)

		require.Error(t, err)
	})
}
