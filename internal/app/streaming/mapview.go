package streaming

import (
	"context"
	"time"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/mapstate"
	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

const emitTimeout = 5 * time.Second

// MapViewEmitter is the production mapstate.MapView: every side effect on
// the bound view becomes one SSE event, so the browser map mutates while the
// model response is still streaming.
type MapViewEmitter struct {
	ctx       context.Context
	ch        chan<- StreamEvent
	sessionID string
}

var _ mapstate.MapView = (*MapViewEmitter)(nil)

func NewMapViewEmitter(ctx context.Context, ch chan<- StreamEvent, sessionID string) *MapViewEmitter {
	return &MapViewEmitter{ctx: ctx, ch: ch, sessionID: sessionID}
}

func (v *MapViewEmitter) emit(e StreamEvent) {
	SendEventSafe(v.ctx, v.ch, e, emitTimeout)
}

func (v *MapViewEmitter) PanTo(p models.Point) {
	e := newEvent(v.sessionID, EventTypePan)
	e.Center = &p
	v.emit(e)
}

func (v *MapViewEmitter) FitBounds(b mapstate.Bounds) {
	if b.Empty() {
		return
	}
	e := newEvent(v.sessionID, EventTypeFit)
	e.Bounds = &b
	v.emit(e)
}

func (v *MapViewEmitter) AddMarker(m mapstate.Marker) {
	e := newEvent(v.sessionID, EventTypeMarker)
	e.Marker = &m
	v.emit(e)
}

func (v *MapViewEmitter) AddPolyline(pl mapstate.Polyline) {
	e := newEvent(v.sessionID, EventTypePolyline)
	e.Polyline = &pl
	v.emit(e)
}

func (v *MapViewEmitter) ShowPopup(p mapstate.Popup) {
	e := newEvent(v.sessionID, EventTypePopup)
	e.Popup = &p
	v.emit(e)
}

func (v *MapViewEmitter) Clear() {
	v.emit(newEvent(v.sessionID, EventTypeClear))
}
