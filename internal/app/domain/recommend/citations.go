package recommend

import (
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

const (
	defaultMapsTitle = "View on Google Maps"
	defaultWebTitle  = "View Website"
)

// CitationsFromResponse collects the grounding sources of the first
// candidate. Chunks without a link are skipped; order is kept.
func CitationsFromResponse(resp *genai.GenerateContentResponse) []models.Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	citations := make([]models.Citation, 0, len(meta.GroundingChunks))
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		switch {
		case chunk.Maps != nil && chunk.Maps.URI != "":
			citations = append(citations, models.Citation{
				Title: titleOr(chunk.Maps.Title, defaultMapsTitle),
				URI:   chunk.Maps.URI,
			})
		case chunk.Web != nil && chunk.Web.URI != "":
			citations = append(citations, models.Citation{
				Title: titleOr(chunk.Web.Title, defaultWebTitle),
				URI:   chunk.Web.URI,
			})
		}
	}
	return citations
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
