package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

func TestFindLeg(t *testing.T) {
	a := models.Point{Lat: 38.7139, Lng: -9.1335}
	b := models.Point{Lat: 38.6916, Lng: -9.2160}

	legs := []models.TravelLeg{
		{Name: "forward", Start: a, End: b, Transport: "tram"},
	}
	m := NewLegMatcher(legs)

	t.Run("Exact Match", func(t *testing.T) {
		leg := m.FindLeg(a, b)
		require.NotNil(t, leg)
		assert.Equal(t, "forward", leg.Name)
	})

	t.Run("Directional", func(t *testing.T) {
		// Swapped endpoints never match; a return trip needs its own leg.
		assert.Nil(t, m.FindLeg(b, a))
	})

	t.Run("Within Tolerance", func(t *testing.T) {
		near := models.Point{Lat: a.Lat + 0.00005, Lng: a.Lng - 0.00005}
		leg := m.FindLeg(near, b)
		require.NotNil(t, leg)
	})

	t.Run("At Tolerance Boundary", func(t *testing.T) {
		// The comparison is strict, so a delta of exactly the tolerance
		// does not match.
		edge := models.Point{Lat: a.Lat + CoordTolerance, Lng: a.Lng}
		assert.Nil(t, m.FindLeg(edge, b))
	})

	t.Run("No Match", func(t *testing.T) {
		far := models.Point{Lat: 40.0, Lng: -8.0}
		assert.Nil(t, m.FindLeg(far, b))
	})
}

func TestFindLegFirstMatchWins(t *testing.T) {
	a := models.Point{Lat: 38.7139, Lng: -9.1335}
	b := models.Point{Lat: 38.6916, Lng: -9.2160}

	legs := []models.TravelLeg{
		{Name: "first", Start: a, End: b, Transport: "tram"},
		{Name: "second", Start: a, End: b, Transport: "taxi"},
	}
	m := NewLegMatcher(legs)

	leg := m.FindLeg(a, b)
	require.NotNil(t, leg)
	assert.Equal(t, "first", leg.Name)
}

func TestFindLegEmptyMatcher(t *testing.T) {
	m := NewLegMatcher(nil)
	assert.Nil(t, m.FindLeg(models.Point{Lat: 38.7, Lng: -9.1}, models.Point{Lat: 38.6, Lng: -9.2}))
}
