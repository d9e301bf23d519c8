package streaming

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/mapstate"
	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// Event types pushed over the SSE connection while a query streams.
const (
	EventTypeStart     = "start"
	EventTypeMarker    = "marker"
	EventTypePopup     = "popup"
	EventTypePolyline  = "polyline"
	EventTypePan       = "pan"
	EventTypeFit       = "fit"
	EventTypeClear     = "clear"
	EventTypeCard      = "card"
	EventTypeItinerary = "itinerary"
	EventTypeError     = "error"
	EventTypeComplete  = "complete"
)

// StreamEvent is one unit of the server-to-map protocol. Exactly one payload
// field is set, matching Type.
type StreamEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	IsFinal   bool      `json:"is_final,omitempty"`

	Marker   *mapstate.Marker       `json:"marker,omitempty"`
	Popup    *mapstate.Popup        `json:"popup,omitempty"`
	Polyline *mapstate.Polyline     `json:"polyline,omitempty"`
	Center   *models.Point          `json:"center,omitempty"`
	Bounds   *mapstate.Bounds       `json:"bounds,omitempty"`
	Card     *models.LocationEvent  `json:"card,omitempty"`
	Timeline []models.TimelineEntry `json:"timeline,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

func newEvent(sessionID, eventType string) StreamEvent {
	return StreamEvent{
		Type:      eventType,
		SessionID: sessionID,
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
	}
}

func NewStartEvent(sessionID string) StreamEvent {
	return newEvent(sessionID, EventTypeStart)
}

func NewCardEvent(sessionID string, ev models.LocationEvent) StreamEvent {
	e := newEvent(sessionID, EventTypeCard)
	e.Card = &ev
	return e
}

func NewItineraryEvent(sessionID string, timeline []models.TimelineEntry) StreamEvent {
	e := newEvent(sessionID, EventTypeItinerary)
	e.Timeline = timeline
	return e
}

func NewErrorEvent(sessionID string, err error) StreamEvent {
	e := newEvent(sessionID, EventTypeError)
	e.Error = err.Error()
	e.IsFinal = true
	return e
}

func NewCompleteEvent(sessionID string) StreamEvent {
	e := newEvent(sessionID, EventTypeComplete)
	e.IsFinal = true
	return e
}

// SendEventSafe delivers an event unless the consumer is gone or the timeout
// elapses. Returns false when the event was dropped.
func SendEventSafe(ctx context.Context, ch chan<- StreamEvent, event StreamEvent, timeout time.Duration) bool {
	select {
	case ch <- event:
		return true
	case <-time.After(timeout):
		return false
	case <-ctx.Done():
		return false
	}
}
