package mapstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	assert.True(t, b.Empty())

	b = b.Extend(models.Point{Lat: 38.7, Lng: -9.1})
	assert.False(t, b.Empty())
	assert.Equal(t, 38.7, b.MinLat)
	assert.Equal(t, 38.7, b.MaxLat)

	b = b.Extend(models.Point{Lat: 38.6, Lng: -9.3})
	b = b.Extend(models.Point{Lat: 38.8, Lng: -9.0})

	assert.Equal(t, 38.6, b.MinLat)
	assert.Equal(t, 38.8, b.MaxLat)
	assert.Equal(t, -9.3, b.MinLng)
	assert.Equal(t, -9.0, b.MaxLng)
}

func TestBoundsIgnoresInvalidPoints(t *testing.T) {
	var b Bounds
	b = b.Extend(models.InvalidPoint())
	assert.True(t, b.Empty())

	b = b.Extend(models.Point{Lat: 38.7, Lng: -9.1})
	b = b.Extend(models.InvalidPoint())

	assert.False(t, b.Empty())
	assert.Equal(t, 38.7, b.MinLat)
	assert.Equal(t, -9.1, b.MaxLng)
}

func TestBoundsCenter(t *testing.T) {
	var b Bounds
	b = b.Extend(models.Point{Lat: 38.0, Lng: -10.0})
	b = b.Extend(models.Point{Lat: 40.0, Lng: -8.0})

	center := b.Center()
	assert.InDelta(t, 39.0, center.Lat, 1e-9)
	assert.InDelta(t, -9.0, center.Lng, 1e-9)
}

func TestBoundsContains(t *testing.T) {
	var b Bounds
	b = b.Extend(models.Point{Lat: 38.0, Lng: -10.0})
	b = b.Extend(models.Point{Lat: 40.0, Lng: -8.0})

	assert.True(t, b.Contains(models.Point{Lat: 39.0, Lng: -9.0}))
	assert.True(t, b.Contains(models.Point{Lat: 38.0, Lng: -10.0}))
	assert.False(t, b.Contains(models.Point{Lat: 41.0, Lng: -9.0}))
	assert.False(t, b.Contains(models.InvalidPoint()))
	assert.False(t, Bounds{}.Contains(models.Point{Lat: 39.0, Lng: -9.0}))
}
