package geoevent

import (
	"encoding/json"
	"math"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// Function-call names the model is allowed to emit.
const (
	CallLocation = "location"
	CallLine     = "line"
)

// Event is the tagged variant produced by Decode. Exactly one field is set
// for a recognized call; both are nil for unknown call names.
type Event struct {
	Location *models.LocationEvent
	Leg      *models.TravelLeg
}

// IsZero reports whether the call name was not recognized.
func (e Event) IsZero() bool {
	return e.Location == nil && e.Leg == nil
}

// Decoder normalizes loosely-typed function-call payloads into typed domain
// records. It is total: malformed or missing fields degrade to empty strings
// and invalid-coordinate sentinels, never an error.
type Decoder struct {
	logger *zap.Logger
}

func NewDecoder(logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{logger: logger}
}

// Decode maps one streamed function call to a domain event.
func (d *Decoder) Decode(call *genai.FunctionCall) Event {
	if call == nil {
		return Event{}
	}
	switch call.Name {
	case CallLocation:
		ev := d.decodeLocation(call.Args)
		return Event{Location: &ev}
	case CallLine:
		leg := d.decodeLine(call.Args)
		return Event{Leg: &leg}
	default:
		d.logger.Debug("Ignoring unknown function call", zap.String("name", call.Name))
		return Event{}
	}
}

func (d *Decoder) decodeLocation(args map[string]any) models.LocationEvent {
	ev := models.LocationEvent{
		Name:        coerceString(args["name"]),
		Description: coerceString(args["description"]),
		Position: models.Point{
			Lat: coerceFloat(args["lat"]),
			Lng: coerceFloat(args["lng"]),
		},
		Time:     coerceString(args["time"]),
		Duration: coerceString(args["duration"]),
	}
	if seq, ok := coerceInt(args["sequence"]); ok {
		ev.Sequence = &seq
	}
	if !ev.Position.Valid() {
		d.logger.Warn("Location arrived with unparseable coordinates",
			zap.String("name", ev.Name))
	}
	return ev
}

func (d *Decoder) decodeLine(args map[string]any) models.TravelLeg {
	return models.TravelLeg{
		Name:       coerceString(args["name"]),
		Start:      coercePoint(args["start"]),
		End:        coercePoint(args["end"]),
		Transport:  coerceString(args["transport"]),
		TravelTime: coerceString(args["travelTime"]),
	}
}

func coercePoint(v any) models.Point {
	m, ok := v.(map[string]any)
	if !ok {
		return models.InvalidPoint()
	}
	return models.Point{
		Lat: coerceFloat(m["lat"]),
		Lng: coerceFloat(m["lng"]),
	}
}

// coerceFloat accepts the number-or-string shapes the model produces.
// Anything else is the NaN sentinel.
func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

func coerceInt(v any) (int, bool) {
	f := coerceFloat(v)
	if math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}
