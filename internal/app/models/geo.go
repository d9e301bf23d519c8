package models

import (
	"encoding/json"
	"math"
)

// Mode selects how a query is interpreted and presented.
type Mode string

const (
	ModeExplorer Mode = "explorer"
	ModePlanner  Mode = "planner"
)

// ParseMode maps a request parameter to a Mode, defaulting to explorer.
func ParseMode(s string) Mode {
	if s == string(ModePlanner) {
		return ModePlanner
	}
	return ModeExplorer
}

// Point is a lat/lng pair. Coordinates that failed numeric coercion are
// carried as NaN; Valid reports whether both axes parsed.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// InvalidPoint returns the sentinel for an unparseable coordinate pair.
func InvalidPoint() Point {
	return Point{Lat: math.NaN(), Lng: math.NaN()}
}

func (p Point) Valid() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lng)
}

// MarshalJSON renders a sentinel axis as null; encoding/json rejects NaN,
// and a location with broken coordinates still has to reach the client.
func (p Point) MarshalJSON() ([]byte, error) {
	out := struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}{}
	if !math.IsNaN(p.Lat) {
		out.Lat = &p.Lat
	}
	if !math.IsNaN(p.Lng) {
		out.Lng = &p.Lng
	}
	return json.Marshal(out)
}

// LocationEvent is one decoded "location" function call. Identity is by
// name; duplicate names stay distinct entries.
type LocationEvent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    Point  `json:"position"`
	Time        string `json:"time,omitempty"`     // "HH:MM", planner mode
	Duration    string `json:"duration,omitempty"` // e.g. "1 hour"
	Sequence    *int   `json:"sequence,omitempty"`
}

// Timed reports whether the event carries a time and so belongs in a day plan.
func (e LocationEvent) Timed() bool {
	return e.Time != ""
}

// TravelLeg is one decoded "line" function call. Stored directionally,
// start to end, as received.
type TravelLeg struct {
	Name       string `json:"name"`
	Start      Point  `json:"start"`
	End        Point  `json:"end"`
	Transport  string `json:"transport,omitempty"`
	TravelTime string `json:"travelTime,omitempty"`
}

// TimelineEntryKind distinguishes stops from interleaved travel segments.
type TimelineEntryKind string

const (
	TimelineStop   TimelineEntryKind = "stop"
	TimelineTravel TimelineEntryKind = "travel"
)

// TimelineEntry is one element of the flattened day-plan timeline.
type TimelineEntry struct {
	Kind TimelineEntryKind `json:"kind"`
	Stop *LocationEvent    `json:"stop,omitempty"`
	Leg  *TravelLeg        `json:"leg,omitempty"`
}
