package recommend

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// BuildPrompt returns the guide instruction for one query. The trailing json
// block format is the contract ExtractPlaces parses against.
func BuildPrompt(city, query string, location *models.GeoPoint) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a helpful local guide for someone visiting %s for the first time.\n", city)
	fmt.Fprintf(&sb, "The user is looking for: %s.\n", strings.TrimSpace(query))
	if location != nil {
		fmt.Fprintf(&sb, "The user is currently at latitude %.6f, longitude %.6f. Find places near them.\n",
			location.Latitude, location.Longitude)
	} else {
		fmt.Fprintf(&sb, "The user's location is unknown. Suggest popular and safe areas in %s for newcomers.\n", city)
	}
	sb.WriteString("Provide a list of specific places with a brief description, why it's good for a newcomer, and estimated cost if possible.\n\n")

	sb.WriteString("IMPORTANT: In addition to the requested places, you MUST also suggest 2-3 popular tourist attractions ")
	sb.WriteString("or points of interest near the recommended locations. Tag them with type \"attraction\".\n")
	sb.WriteString("Keep the tone welcoming and informative.\n\n")

	sb.WriteString("CRITICAL: At the very end of your response, you MUST include a JSON block enclosed in ```json and ``` ")
	sb.WriteString("containing an array of ALL the specific places you recommended (both the primary places and the nearby attractions). ")
	fmt.Fprintf(&sb, "Include their approximate latitude and longitude in %s.\n", city)
	sb.WriteString("Format:\n")
	sb.WriteString("```json\n")
	sb.WriteString("[\n")
	sb.WriteString("  {\n")
	sb.WriteString("    \"name\": \"Name of place\",\n")
	fmt.Fprintf(&sb, "    \"lat\": %.4f,\n", models.DefaultCenter.Latitude)
	fmt.Fprintf(&sb, "    \"lng\": %.4f,\n", models.DefaultCenter.Longitude)
	sb.WriteString("    \"type\": \"pg\" | \"hotel\" | \"restaurant\" | \"attraction\" | \"other\",\n")
	sb.WriteString("    \"description\": \"Short description\"\n")
	sb.WriteString("  }\n")
	sb.WriteString("]\n")
	sb.WriteString("```\n")

	return sb.String()
}

// BuildConfig enables Maps grounding. A known location is passed as the
// retrieval hint.
func BuildConfig(location *models.GeoPoint) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}
	if location != nil {
		cfg.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(location.Latitude),
					Longitude: genai.Ptr(location.Longitude),
				},
			},
		}
	}
	return cfg
}
