package mapstate

import "github.com/FACorreiaa/loci-maps/internal/app/models"

// Bounds is the minimal rectangular region containing every point seen so
// far. The zero value is the empty region.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
	set    bool
}

func (b Bounds) Empty() bool {
	return !b.set
}

// Extend grows the region to include p. Invalid points are ignored so one
// unparseable coordinate cannot poison the fitted viewport.
func (b Bounds) Extend(p models.Point) Bounds {
	if !p.Valid() {
		return b
	}
	if !b.set {
		return Bounds{MinLat: p.Lat, MaxLat: p.Lat, MinLng: p.Lng, MaxLng: p.Lng, set: true}
	}
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
	return b
}

// Center returns the midpoint of the region.
func (b Bounds) Center() models.Point {
	if !b.set {
		return models.Point{}
	}
	return models.Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// Contains reports whether p falls inside the region.
func (b Bounds) Contains(p models.Point) bool {
	if !b.set || !p.Valid() {
		return false
	}
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
