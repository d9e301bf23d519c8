package itinerary

import (
	"math"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// CoordTolerance is the absolute per-axis tolerance, in degrees, used to
// match leg endpoints against stop positions (~11 m at the equator).
const CoordTolerance = 0.0001

// LegMatcher finds the travel leg connecting two positions. Lookup policy:
// legs are scanned in arrival order and the first directional match wins,
// even when several legs satisfy the tolerance. Swapped endpoints do not
// match; a return trip needs its own leg.
type LegMatcher struct {
	legs []models.TravelLeg
}

func NewLegMatcher(legs []models.TravelLeg) *LegMatcher {
	return &LegMatcher{legs: legs}
}

// FindLeg returns the earliest-added leg whose start matches a and whose end
// matches b within CoordTolerance, or nil.
func (m *LegMatcher) FindLeg(a, b models.Point) *models.TravelLeg {
	for i := range m.legs {
		leg := &m.legs[i]
		if near(leg.Start, a) && near(leg.End, b) {
			return leg
		}
	}
	return nil
}

func near(p, q models.Point) bool {
	return math.Abs(p.Lat-q.Lat) < CoordTolerance && math.Abs(p.Lng-q.Lng) < CoordTolerance
}
