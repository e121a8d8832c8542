package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Point{Latitude: -33.87, Longitude: 151.21}))
	assert.ErrorIs(t, Validate(Point{Latitude: math.NaN(), Longitude: 151.21}), ErrInvalidCoordinate)
	assert.ErrorIs(t, Validate(Point{Latitude: -33.87, Longitude: math.Inf(1)}), ErrInvalidCoordinate)
	assert.ErrorIs(t, Validate(Point{Latitude: math.Inf(-1), Longitude: math.NaN()}), ErrInvalidCoordinate)
}

func TestLatDelta(t *testing.T) {
	assert.InDelta(t, 0.045045, LatDelta(5), 1e-6)
	assert.Equal(t, float64(0), LatDelta(0))
}

func TestLngDelta(t *testing.T) {
	// A degree of longitude shrinks with latitude, so the delta grows.
	atEquator := LngDelta(5, 0)
	atSydney := LngDelta(5, -33.87)
	assert.InDelta(t, 0.044915, atEquator, 1e-6)
	assert.Greater(t, atSydney, atEquator)

	// Near the poles the delta blows up but must stay finite.
	atPole := LngDelta(5, 90)
	assert.False(t, math.IsInf(atPole, 0))
	assert.False(t, math.IsNaN(atPole))
}

func TestNewBoundingBox(t *testing.T) {
	center := Point{Latitude: -33.87, Longitude: 151.21}
	box, err := NewBoundingBox(center, 5)
	require.NoError(t, err)

	assert.InDelta(t, -33.87-0.045045, box.MinLat, 1e-5)
	assert.InDelta(t, -33.87+0.045045, box.MaxLat, 1e-5)
	assert.Less(t, box.MinLng, center.Longitude)
	assert.Greater(t, box.MaxLng, center.Longitude)

	_, err = NewBoundingBox(Point{Latitude: math.NaN(), Longitude: 0}, 5)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestBoundingBoxContains(t *testing.T) {
	box, err := NewBoundingBox(Point{Latitude: -33.87, Longitude: 151.21}, 5)
	require.NoError(t, err)

	assert.True(t, box.Contains(Point{Latitude: -33.87, Longitude: 151.21}))
	assert.True(t, box.Contains(Point{Latitude: -33.88, Longitude: 151.22}))
	assert.False(t, box.Contains(Point{Latitude: -34.5, Longitude: 151.21}))
	assert.False(t, box.Contains(Point{Latitude: -33.87, Longitude: 152.5}))
	assert.False(t, box.Contains(Point{Latitude: math.NaN(), Longitude: 151.21}),
		"unvalidatable points are excluded, not matched")
}

func TestFilterWithin(t *testing.T) {
	center := Point{Latitude: -33.87, Longitude: 151.21}
	near := Point{Latitude: -33.875, Longitude: 151.215}
	far := Point{Latitude: -35.0, Longitude: 151.21}
	bad := Point{Latitude: math.NaN(), Longitude: math.NaN()}

	got, err := FilterWithin(center, 5, []Point{far, near, bad, center})
	require.NoError(t, err)
	assert.Equal(t, []Point{near, center}, got, "input order preserved")

	_, err = FilterWithin(bad, 5, []Point{near})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
