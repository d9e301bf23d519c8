package explore

import (
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/loci-maps/internal/app/domain/geoevent"
	"github.com/FACorreiaa/loci-maps/internal/app/models"
)

const systemInstructionsBase = `You are a geographic exploration assistant driving an interactive map.
Answer every request exclusively by calling the declared functions: call "location" once for each
point of interest and "line" once for each travel route connecting two of them. Never answer in
free text. Choose real places with accurate decimal coordinates. Prefer a rich set of locations
connected by lines over a sparse one.`

const plannerInstructions = `The user wants a single-day itinerary. Give every location a "time"
(24-hour "HH:MM"), a "duration", and a "sequence" number reflecting visiting order, and connect
each consecutive pair of stops with a "line" carrying "transport" and "travelTime".`

const plannerPromptSuffix = " Plan this as a day trip itinerary with timed stops and travel between them."

// PromptSpec is the structured request description handed to the request
// builder. Mode is carried as data; the system directive is assembled from
// parts rather than spliced into a template.
type PromptSpec struct {
	Query string
	Mode  models.Mode
}

// UserPrompt returns the outbound prompt, with the fixed planner suffix
// appended in planner mode.
func (s PromptSpec) UserPrompt() string {
	if s.Mode == models.ModePlanner {
		return s.Query + plannerPromptSuffix
	}
	return s.Query
}

// SystemInstruction assembles the mode-dependent system directive.
func (s PromptSpec) SystemInstruction() string {
	parts := []string{systemInstructionsBase}
	if s.Mode == models.ModePlanner {
		parts = append(parts, plannerInstructions)
	}
	return strings.Join(parts, "\n\n")
}

// GenerateConfig builds the generation config declaring the two
// function-call schemas the model may emit.
func (s PromptSpec) GenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](1.0),
		SystemInstruction: genai.NewContentFromText(s.SystemInstruction(), genai.RoleUser),
		Tools: []*genai.Tool{
			{FunctionDeclarations: functionDeclarations()},
		},
	}
}

func functionDeclarations() []*genai.FunctionDeclaration {
	coords := func() map[string]*genai.Schema {
		return map[string]*genai.Schema{
			"lat": {Type: genai.TypeString, Description: "Latitude in decimal degrees"},
			"lng": {Type: genai.TypeString, Description: "Longitude in decimal degrees"},
		}
	}

	locationProps := map[string]*genai.Schema{
		"name":        {Type: genai.TypeString, Description: "Name of the place"},
		"description": {Type: genai.TypeString, Description: "One or two sentences about the place"},
		"time":        {Type: genai.TypeString, Description: `Arrival time as 24-hour "HH:MM" (day plans only)`},
		"duration":    {Type: genai.TypeString, Description: `Suggested stay, e.g. "1 hour" (day plans only)`},
		"sequence":    {Type: genai.TypeInteger, Description: "Visiting order, starting at 1 (day plans only)"},
	}
	for k, v := range coords() {
		locationProps[k] = v
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        geoevent.CallLocation,
			Description: "Place a point of interest on the map.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: locationProps,
				Required:   []string{"name", "description", "lat", "lng"},
			},
		},
		{
			Name:        geoevent.CallLine,
			Description: "Draw a travel route between two points on the map.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Description: "Name of the route"},
					"start": {
						Type:       genai.TypeObject,
						Properties: coords(),
						Required:   []string{"lat", "lng"},
					},
					"end": {
						Type:       genai.TypeObject,
						Properties: coords(),
						Required:   []string{"lat", "lng"},
					},
					"transport":  {Type: genai.TypeString, Description: "Mode of transport, e.g. walking, driving"},
					"travelTime": {Type: genai.TypeString, Description: `Travel time, e.g. "15 minutes"`},
				},
				Required: []string{"name", "start", "end"},
			},
		},
	}
}
