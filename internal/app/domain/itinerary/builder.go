package itinerary

import (
	"sort"

	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// Builder collects timed location events in arrival order and, once the
// stream has finished, produces the sorted day plan and its flattened
// timeline. Only planner-mode queries feed a Builder.
type Builder struct {
	logger  *zap.Logger
	entries []models.LocationEvent
}

func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Collect adds a location event to the day plan if it carries a time.
// Untimed events are points of interest, not stops.
func (b *Builder) Collect(ev models.LocationEvent) {
	if !ev.Timed() {
		return
	}
	b.entries = append(b.entries, ev)
}

// Len reports the number of collected stops.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Reset drops every collected stop.
func (b *Builder) Reset() {
	b.entries = nil
}

// Finalize stable-sorts the day plan: sequence ascending with missing
// sequence last, ties broken by lexicographic time (zero-padded "HH:MM"
// makes that chronological). Returns the sorted plan.
func (b *Builder) Finalize() []models.LocationEvent {
	sort.SliceStable(b.entries, func(i, j int) bool {
		si, sj := b.entries[i].Sequence, b.entries[j].Sequence
		switch {
		case si != nil && sj != nil:
			if *si != *sj {
				return *si < *sj
			}
		case si != nil:
			return true
		case sj != nil:
			return false
		}
		return b.entries[i].Time < b.entries[j].Time
	})
	b.logger.Debug("Day plan finalized", zap.Int("stops", len(b.entries)))
	return b.entries
}

// Timeline flattens the finalized plan into alternating stop and travel
// entries. A travel entry appears between consecutive stops only when the
// matcher finds a leg from the earlier stop to the later one; unmatched
// pairs simply have no travel entry.
func (b *Builder) Timeline(matcher *LegMatcher) []models.TimelineEntry {
	plan := b.entries
	out := make([]models.TimelineEntry, 0, len(plan)*2)
	for i := range plan {
		stop := plan[i]
		out = append(out, models.TimelineEntry{Kind: models.TimelineStop, Stop: &stop})
		if i+1 < len(plan) {
			if leg := matcher.FindLeg(plan[i].Position, plan[i+1].Position); leg != nil {
				out = append(out, models.TimelineEntry{Kind: models.TimelineTravel, Leg: leg})
			}
		}
	}
	return out
}
