package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

func timedStop(name, tm string, seq *int) models.LocationEvent {
	return models.LocationEvent{
		Name:     name,
		Position: models.Point{Lat: 38.7, Lng: -9.1},
		Time:     tm,
		Sequence: seq,
	}
}

func seqPtr(i int) *int { return &i }

func TestCollectSkipsUntimedEvents(t *testing.T) {
	b := NewBuilder(nil)

	b.Collect(models.LocationEvent{Name: "POI", Position: models.Point{Lat: 38.7, Lng: -9.1}})
	b.Collect(timedStop("Stop", "09:00", nil))

	assert.Equal(t, 1, b.Len())
}

func TestFinalizeOrdering(t *testing.T) {
	tests := []struct {
		name  string
		stops []models.LocationEvent
		want  []string
	}{
		{
			name: "By Sequence",
			stops: []models.LocationEvent{
				timedStop("third", "09:00", seqPtr(3)),
				timedStop("first", "17:00", seqPtr(1)),
				timedStop("second", "12:00", seqPtr(2)),
			},
			want: []string{"first", "second", "third"},
		},
		{
			name: "Missing Sequence Sorts Last",
			stops: []models.LocationEvent{
				timedStop("loose", "08:00", nil),
				timedStop("first", "10:00", seqPtr(1)),
			},
			want: []string{"first", "loose"},
		},
		{
			name: "Sequence Tie Broken By Time",
			stops: []models.LocationEvent{
				timedStop("later", "15:00", seqPtr(1)),
				timedStop("earlier", "09:30", seqPtr(1)),
			},
			want: []string{"earlier", "later"},
		},
		{
			name: "No Sequences Sorted By Time",
			stops: []models.LocationEvent{
				timedStop("lunch", "13:00", nil),
				timedStop("breakfast", "08:30", nil),
				timedStop("dinner", "20:00", nil),
			},
			want: []string{"breakfast", "lunch", "dinner"},
		},
		{
			name: "Stable For Full Ties",
			stops: []models.LocationEvent{
				timedStop("arrived-first", "10:00", nil),
				timedStop("arrived-second", "10:00", nil),
			},
			want: []string{"arrived-first", "arrived-second"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(nil)
			for _, stop := range tc.stops {
				b.Collect(stop)
			}

			plan := b.Finalize()

			got := make([]string, len(plan))
			for i, stop := range plan {
				got[i] = stop.Name
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimelineInterleavesTravelLegs(t *testing.T) {
	castle := models.Point{Lat: 38.7139, Lng: -9.1335}
	tower := models.Point{Lat: 38.6916, Lng: -9.2160}
	market := models.Point{Lat: 38.7067, Lng: -9.1459}

	b := NewBuilder(nil)
	b.Collect(models.LocationEvent{Name: "Castle", Position: castle, Time: "09:00"})
	b.Collect(models.LocationEvent{Name: "Tower", Position: tower, Time: "11:00"})
	b.Collect(models.LocationEvent{Name: "Market", Position: market, Time: "13:00"})
	b.Finalize()

	// Only the first pair has a matching leg.
	matcher := NewLegMatcher([]models.TravelLeg{
		{Name: "Castle to Tower", Start: castle, End: tower, Transport: "tram", TravelTime: "25 min"},
	})

	timeline := b.Timeline(matcher)

	require.Len(t, timeline, 4)
	assert.Equal(t, models.TimelineStop, timeline[0].Kind)
	assert.Equal(t, "Castle", timeline[0].Stop.Name)
	assert.Equal(t, models.TimelineTravel, timeline[1].Kind)
	assert.Equal(t, "tram", timeline[1].Leg.Transport)
	assert.Equal(t, "Tower", timeline[2].Stop.Name)
	assert.Equal(t, "Market", timeline[3].Stop.Name)
}

func TestReset(t *testing.T) {
	b := NewBuilder(nil)
	b.Collect(timedStop("Stop", "09:00", nil))
	require.Equal(t, 1, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Finalize())
}
