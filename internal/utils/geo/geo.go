// Package geo implements the approximate bounding-box radius search used by
// nearby discovery. The box is a rectangular approximation of a circle and
// is kept that way on purpose: the map overlay drawn by clients assumes the
// same approximation.
package geo

import (
	"errors"
	"math"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate: latitude and longitude must be finite")

// Point is a pair of finite WGS84 degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects NaN and infinite coordinates before any box arithmetic.
// Without this a NaN silently fails every comparison and looks like an
// empty-but-plausible result.
func Validate(p Point) error {
	if !isFinite(p.Latitude) || !isFinite(p.Longitude) {
		return ErrInvalidCoordinate
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// LatDelta converts a radius in kilometers to degrees of latitude,
// using ~111 km per degree everywhere.
func LatDelta(km float64) float64 {
	return km / 111.0
}

// LngDelta converts a radius in kilometers to degrees of longitude at the
// given latitude. cos(lat) is floored to a small nonzero value so the
// divisor never reaches zero at the poles.
func LngDelta(km float64, atLatDeg float64) float64 {
	rad := (math.Pi / 180) * atLatDeg
	c := math.Cos(rad)
	if c == 0 {
		c = 0.0001
	}
	return km / (111.320 * c)
}

// BoundingBox is an axis-aligned lat/lng rectangle around a center point.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// NewBoundingBox frames radiusKm around center.
func NewBoundingBox(center Point, radiusKm float64) (BoundingBox, error) {
	if err := Validate(center); err != nil {
		return BoundingBox{}, err
	}
	latDelta := LatDelta(radiusKm)
	lngDelta := LngDelta(radiusKm, center.Latitude)
	return BoundingBox{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLng: center.Longitude - lngDelta,
		MaxLng: center.Longitude + lngDelta,
	}, nil
}

// Contains reports whether p lies inside the box. Points that fail
// validation are excluded rather than treated as a match failure.
func (b BoundingBox) Contains(p Point) bool {
	if Validate(p) != nil {
		return false
	}
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLng && p.Longitude <= b.MaxLng
}

// FilterWithin returns the subset of candidates plausibly within radiusKm of
// center, in input order.
func FilterWithin(center Point, radiusKm float64, candidates []Point) ([]Point, error) {
	box, err := NewBoundingBox(center, radiusKm)
	if err != nil {
		return nil, err
	}
	var out []Point
	for _, p := range candidates {
		if box.Contains(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
