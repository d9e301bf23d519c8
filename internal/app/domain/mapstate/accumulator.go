package mapstate

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// Marker is a rendered map pin keyed to one location event.
type Marker struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position models.Point `json:"position"`
}

// Popup is a custom overlay anchored to a location. Viewport culling is the
// map collaborator's job; the server only tracks content and anchor.
type Popup struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Position    models.Point `json:"position"`
}

// Polyline is a directed path artifact from a travel leg. Style is a
// presentation hint only; mode never changes the data.
type Polyline struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Start models.Point `json:"start"`
	End   models.Point `json:"end"`
	Style string       `json:"style"`
}

// MapView is the port to the rendering collaborator. The production
// implementation forwards artifacts over SSE; tests record calls.
type MapView interface {
	PanTo(p models.Point)
	FitBounds(b Bounds)
	AddMarker(m Marker)
	AddPolyline(pl Polyline)
	ShowPopup(p Popup)
	Clear()
}

// Accumulator holds the working set for one query: every point seen (for
// bounds fitting), location events and travel legs in arrival order, and the
// marker/popup/polyline artifacts registered against the bound view. Nothing
// is deduplicated; every decoded event produces a new artifact.
type Accumulator struct {
	logger *zap.Logger
	view   MapView
	mode   models.Mode

	points    []models.Point
	locations []models.LocationEvent
	legs      []models.TravelLeg
	markers   []Marker
	popups    []Popup
	polylines []Polyline
	bounds    Bounds
}

func NewAccumulator(view MapView, mode models.Mode, logger *zap.Logger) *Accumulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Accumulator{
		logger: logger,
		view:   view,
		mode:   mode,
	}
}

// AddLocation registers a location event: the point joins the bound set, a
// marker and popup are created, and the view pans to the newest point before
// re-fitting to everything accumulated so far. That ordering is the visual
// contract: jump to the new place, then zoom out to show the whole set.
func (a *Accumulator) AddLocation(ev models.LocationEvent) {
	a.locations = append(a.locations, ev)

	if ev.Position.Valid() {
		a.points = append(a.points, ev.Position)
		a.bounds = a.bounds.Extend(ev.Position)
	} else {
		a.logger.Warn("Skipping map artifacts for location without coordinates",
			zap.String("name", ev.Name))
		return
	}

	marker := Marker{ID: uuid.New().String(), Name: ev.Name, Position: ev.Position}
	popup := Popup{
		ID:          uuid.New().String(),
		Name:        ev.Name,
		Description: ev.Description,
		Position:    ev.Position,
	}
	a.markers = append(a.markers, marker)
	a.popups = append(a.popups, popup)

	a.view.AddMarker(marker)
	a.view.ShowPopup(popup)
	a.view.PanTo(ev.Position)
	a.view.FitBounds(a.bounds)
}

// AddLeg registers a travel leg: both endpoints join the bound set and a
// directed polyline is drawn start to end.
func (a *Accumulator) AddLeg(leg models.TravelLeg) {
	a.legs = append(a.legs, leg)

	for _, p := range []models.Point{leg.Start, leg.End} {
		if p.Valid() {
			a.points = append(a.points, p)
			a.bounds = a.bounds.Extend(p)
		}
	}

	pl := Polyline{
		ID:    uuid.New().String(),
		Name:  leg.Name,
		Start: leg.Start,
		End:   leg.End,
		Style: string(a.mode),
	}
	a.polylines = append(a.polylines, pl)

	a.view.AddPolyline(pl)
	a.view.FitBounds(a.bounds)
}

// Reset clears every accumulated point, event and artifact and empties the
// bound view. Called at the start of each query; no cross-query residue.
func (a *Accumulator) Reset() {
	a.points = nil
	a.locations = nil
	a.legs = nil
	a.markers = nil
	a.popups = nil
	a.polylines = nil
	a.bounds = Bounds{}
	a.view.Clear()
}

func (a *Accumulator) Points() []models.Point            { return a.points }
func (a *Accumulator) Locations() []models.LocationEvent { return a.locations }
func (a *Accumulator) Legs() []models.TravelLeg          { return a.legs }
func (a *Accumulator) Markers() []Marker                 { return a.markers }
func (a *Accumulator) Popups() []Popup                   { return a.popups }
func (a *Accumulator) Polylines() []Polyline             { return a.polylines }
func (a *Accumulator) Bounds() Bounds                    { return a.bounds }
