package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

func TestCitationsFromResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want []models.Citation
	}{
		{name: "nil response", resp: nil, want: nil},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: nil},
		{
			name: "no grounding metadata",
			resp: textResponse("hello"),
			want: nil,
		},
		{
			name: "maps and web keep order and default titles",
			resp: textResponse("hello",
				&genai.GroundingChunk{Web: &genai.GroundingChunkWeb{URI: "https://example.com/a"}},
				&genai.GroundingChunk{Maps: &genai.GroundingChunkMaps{Title: "Truffles", URI: "https://maps.google.com/?cid=2"}},
				&genai.GroundingChunk{Maps: &genai.GroundingChunkMaps{URI: "https://maps.google.com/?cid=3"}},
				&genai.GroundingChunk{Web: &genai.GroundingChunkWeb{Title: "Blog", URI: "https://example.com/b"}},
			),
			want: []models.Citation{
				{Title: "View Website", URI: "https://example.com/a"},
				{Title: "Truffles", URI: "https://maps.google.com/?cid=2"},
				{Title: "View on Google Maps", URI: "https://maps.google.com/?cid=3"},
				{Title: "Blog", URI: "https://example.com/b"},
			},
		},
		{
			name: "chunks without links are skipped",
			resp: textResponse("hello",
				nil,
				&genai.GroundingChunk{Maps: &genai.GroundingChunkMaps{Title: "No link"}},
				&genai.GroundingChunk{Maps: &genai.GroundingChunkMaps{Title: "Maps empty"}, Web: &genai.GroundingChunkWeb{URI: "https://example.com/c"}},
			),
			want: []models.Citation{
				{Title: "View Website", URI: "https://example.com/c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CitationsFromResponse(tt.resp)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	withLoc := BuildPrompt("Bangalore", "cheap PG in Koramangala", &models.GeoPoint{Latitude: 12.9352, Longitude: 77.6245})
	assert.Contains(t, withLoc, "The user is looking for: cheap PG in Koramangala.")
	assert.Contains(t, withLoc, "latitude 12.935200, longitude 77.624500")
	assert.Contains(t, withLoc, "2-3 popular tourist attractions")
	assert.Contains(t, withLoc, "```json")
	assert.NotContains(t, withLoc, "safe areas")

	noLoc := BuildPrompt("Bangalore", "food", nil)
	assert.Contains(t, noLoc, "Suggest popular and safe areas in Bangalore for newcomers")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(noLoc), "```"))
}

func TestBuildConfig(t *testing.T) {
	cfg := BuildConfig(nil)
	if assert.Len(t, cfg.Tools, 1) {
		assert.NotNil(t, cfg.Tools[0].GoogleMaps)
	}
	assert.Nil(t, cfg.ToolConfig)

	cfg = BuildConfig(&models.GeoPoint{Latitude: 12.9, Longitude: 77.6})
	if assert.NotNil(t, cfg.ToolConfig) {
		ll := cfg.ToolConfig.RetrievalConfig.LatLng
		assert.Equal(t, 12.9, *ll.Latitude)
		assert.Equal(t, 77.6, *ll.Longitude)
	}
}
