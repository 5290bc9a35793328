package shell

import (
	"html/template"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// ProseRenderer turns model prose into HTML.
type ProseRenderer interface {
	Render(src string) template.HTML
}

// Presentation is a SearchResult arranged for display. When places exist they
// are split into Main and Attractions and Citations is empty; otherwise the
// citations are listed flat.
type Presentation struct {
	ProseHTML   template.HTML
	Main        []models.Place
	Attractions []models.Place
	Citations   []models.Citation
}

// HasPlaces reports whether the structured sections are shown.
func (p Presentation) HasPlaces() bool {
	return len(p.Main)+len(p.Attractions) > 0
}

// Present arranges result for display. A nil result yields a zero Presentation.
func Present(result *models.SearchResult, prose ProseRenderer) Presentation {
	if result == nil {
		return Presentation{}
	}

	var p Presentation
	if prose != nil {
		p.ProseHTML = prose.Render(result.Text)
	} else {
		p.ProseHTML = template.HTML(template.HTMLEscapeString(result.Text))
	}

	if len(result.Places) == 0 {
		p.Citations = result.Citations
		return p
	}
	for _, place := range result.Places {
		if place.Category == models.CategoryAttraction {
			p.Attractions = append(p.Attractions, place)
		} else {
			p.Main = append(p.Main, place)
		}
	}
	return p
}
