package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

// ExportFilename is the fixed download name for the plain-text day plan.
const ExportFilename = "day-plan.txt"

// ExportText renders the sorted day plan as the plain-text artifact: one
// numbered section per stop, with a travel line between consecutive stops
// when a matching leg exists.
func ExportText(plan []models.LocationEvent, matcher *LegMatcher) string {
	var sb strings.Builder
	for i, stop := range plan {
		fmt.Fprintf(&sb, "## %d. %s\n", i+1, stop.Name)
		fmt.Fprintf(&sb, "Time: %s\n", stop.Time)
		if stop.Duration != "" {
			fmt.Fprintf(&sb, "Duration: %s\n", stop.Duration)
		}
		sb.WriteString("\n")
		sb.WriteString(stop.Description)
		sb.WriteString("\n\n")

		if i+1 < len(plan) {
			if leg := matcher.FindLeg(stop.Position, plan[i+1].Position); leg != nil {
				fmt.Fprintf(&sb, "-> Travel via %s (%s)\n\n", leg.Transport, leg.TravelTime)
			}
		}
	}
	return sb.String()
}
