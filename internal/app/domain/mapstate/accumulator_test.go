package mapstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// recorderView records every call made against the map view, in order.
type recorderView struct {
	calls     []string
	markers   []Marker
	popups    []Popup
	polylines []Polyline
	centers   []models.Point
	fits      []Bounds
}

func (v *recorderView) PanTo(p models.Point) {
	v.calls = append(v.calls, "pan")
	v.centers = append(v.centers, p)
}

func (v *recorderView) FitBounds(b Bounds) {
	v.calls = append(v.calls, "fit")
	v.fits = append(v.fits, b)
}

func (v *recorderView) AddMarker(m Marker) {
	v.calls = append(v.calls, "marker")
	v.markers = append(v.markers, m)
}

func (v *recorderView) AddPolyline(pl Polyline) {
	v.calls = append(v.calls, "polyline")
	v.polylines = append(v.polylines, pl)
}

func (v *recorderView) ShowPopup(p Popup) {
	v.calls = append(v.calls, "popup")
	v.popups = append(v.popups, p)
}

func (v *recorderView) Clear() {
	v.calls = append(v.calls, "clear")
}

func locationAt(name string, lat, lng float64) models.LocationEvent {
	return models.LocationEvent{
		Name:        name,
		Description: name + " description",
		Position:    models.Point{Lat: lat, Lng: lng},
	}
}

func TestAddLocationCreatesArtifactsInOrder(t *testing.T) {
	view := &recorderView{}
	acc := NewAccumulator(view, models.ModeExplorer, nil)

	acc.AddLocation(locationAt("Alfama", 38.7131, -9.1250))

	// Pan to the new point happens before the fit to everything seen.
	assert.Equal(t, []string{"marker", "popup", "pan", "fit"}, view.calls)

	require.Len(t, acc.Markers(), 1)
	require.Len(t, acc.Popups(), 1)
	assert.Equal(t, "Alfama", acc.Markers()[0].Name)
	assert.Equal(t, "Alfama description", acc.Popups()[0].Description)
	assert.NotEmpty(t, acc.Markers()[0].ID)
	assert.Equal(t, models.Point{Lat: 38.7131, Lng: -9.1250}, view.centers[0])
}

func TestAddLocationNoDeduplication(t *testing.T) {
	view := &recorderView{}
	acc := NewAccumulator(view, models.ModeExplorer, nil)

	acc.AddLocation(locationAt("Alfama", 38.7131, -9.1250))
	acc.AddLocation(locationAt("Alfama", 38.7131, -9.1250))

	assert.Len(t, acc.Markers(), 2)
	assert.Len(t, acc.Popups(), 2)
	assert.NotEqual(t, acc.Markers()[0].ID, acc.Markers()[1].ID)
}

func TestAddLocationInvalidPositionSkipsArtifacts(t *testing.T) {
	view := &recorderView{}
	acc := NewAccumulator(view, models.ModeExplorer, nil)

	ev := models.LocationEvent{Name: "Nowhere", Position: models.InvalidPoint()}
	acc.AddLocation(ev)

	// The event is still recorded, but no map artifacts are produced and
	// the bounds stay empty.
	assert.Len(t, acc.Locations(), 1)
	assert.Empty(t, acc.Markers())
	assert.Empty(t, acc.Popups())
	assert.Empty(t, view.calls)
	assert.True(t, acc.Bounds().Empty())
}

func TestAddLegExtendsBoundsAndDrawsPolyline(t *testing.T) {
	view := &recorderView{}
	acc := NewAccumulator(view, models.ModePlanner, nil)

	leg := models.TravelLeg{
		Name:       "Castle to Tower",
		Start:      models.Point{Lat: 38.7139, Lng: -9.1335},
		End:        models.Point{Lat: 38.6916, Lng: -9.2160},
		Transport:  "tram",
		TravelTime: "25 min",
	}
	acc.AddLeg(leg)

	assert.Equal(t, []string{"polyline", "fit"}, view.calls)
	require.Len(t, acc.Polylines(), 1)
	assert.Equal(t, "planner", acc.Polylines()[0].Style)

	b := acc.Bounds()
	assert.InDelta(t, 38.6916, b.MinLat, 1e-9)
	assert.InDelta(t, 38.7139, b.MaxLat, 1e-9)
	assert.InDelta(t, -9.2160, b.MinLng, 1e-9)
}

func TestResetClearsEverything(t *testing.T) {
	view := &recorderView{}
	acc := NewAccumulator(view, models.ModeExplorer, nil)

	acc.AddLocation(locationAt("Alfama", 38.7131, -9.1250))
	acc.AddLeg(models.TravelLeg{
		Start: models.Point{Lat: 38.71, Lng: -9.12},
		End:   models.Point{Lat: 38.70, Lng: -9.14},
	})

	acc.Reset()

	assert.Empty(t, acc.Points())
	assert.Empty(t, acc.Locations())
	assert.Empty(t, acc.Legs())
	assert.Empty(t, acc.Markers())
	assert.Empty(t, acc.Popups())
	assert.Empty(t, acc.Polylines())
	assert.True(t, acc.Bounds().Empty())
	assert.Equal(t, "clear", view.calls[len(view.calls)-1])
}
