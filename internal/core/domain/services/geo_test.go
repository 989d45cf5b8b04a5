package services_test

import (
	"testing"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCoordinates(t *testing.T, lat, lon float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}

func TestGeoCalculator_EstimatedTravelMinutes(t *testing.T) {
	calc := services.NewGeoCalculator()

	t.Run("should round travel time up to whole minutes", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 1)

		// ~111.195 km at 30 km/h is ~222.4 minutes
		minutes, err := calc.EstimatedTravelMinutes(from, to, services.DefaultAvgSpeedKmh)

		require.NoError(t, err)
		assert.Equal(t, 223, minutes)
	})

	t.Run("should be zero for the same point", func(t *testing.T) {
		point := makeCoordinates(t, 43.238949, 76.889709)

		minutes, err := calc.EstimatedTravelMinutes(point, point, services.DefaultAvgSpeedKmh)

		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("should fall back to the default speed", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 1)

		withDefault, err := calc.EstimatedTravelMinutes(from, to, 0)
		require.NoError(t, err)
		explicit, err := calc.EstimatedTravelMinutes(from, to, services.DefaultAvgSpeedKmh)
		require.NoError(t, err)

		assert.Equal(t, explicit, withDefault)
	})

	t.Run("should fail for unconstructed coordinates", func(t *testing.T) {
		var invalid kernel.Coordinates

		_, err := calc.EstimatedTravelMinutes(invalid, makeCoordinates(t, 0, 0), 30)

		require.Error(t, err)
	})
}

func TestGeoCalculator_DeliveryFee(t *testing.T) {
	calc := services.NewGeoCalculator()

	t.Run("should charge base fee plus per kilometer", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 0.05)

		meters, err := from.Distance(to)
		require.NoError(t, err)

		fee, err := calc.DeliveryFee(from, to, 1000)

		require.NoError(t, err)
		assert.Greater(t, fee, services.BaseDeliveryFee)
		assert.LessOrEqual(t, fee, services.BaseDeliveryFee+int64(meters)/1000*services.PerKmDeliveryFee+services.PerKmDeliveryFee)
	})

	t.Run("should charge only base fee for zero distance", func(t *testing.T) {
		point := makeCoordinates(t, 43.238949, 76.889709)

		fee, err := calc.DeliveryFee(point, point, 1000)

		require.NoError(t, err)
		assert.Equal(t, services.BaseDeliveryFee, fee)
	})

	t.Run("should never decrease with distance", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		previous := int64(0)

		for _, lon := range []float64{0.01, 0.02, 0.05, 0.08} {
			fee, err := calc.DeliveryFee(from, makeCoordinates(t, 0, lon), 1000)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, fee, previous)
			previous = fee
		}
	})

	t.Run("should be free at the threshold", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 0.05)

		fee, err := calc.DeliveryFee(from, to, services.FreeDeliveryThreshold)

		require.NoError(t, err)
		assert.Equal(t, int64(0), fee)
	})
}

func TestGeoCalculator_IsDeliverable(t *testing.T) {
	calc := services.NewGeoCalculator()

	t.Run("should accept nearby points", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 0.05)

		ok, err := calc.IsDeliverable(from, to)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should reject points beyond the maximum distance", func(t *testing.T) {
		from := makeCoordinates(t, 0, 0)
		to := makeCoordinates(t, 0, 1)

		ok, err := calc.IsDeliverable(from, to)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
