package mapview

import (
	"fmt"
	"html/template"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// Marker geometry, in pixels. The anchor is the teardrop's tip.
var (
	IconSize    = [2]int{36, 48}
	IconAnchor  = [2]int{18, 48}
	PopupAnchor = [2]int{0, -48}
)

// Pin is the visual identity of a category on the map.
type Pin struct {
	Category models.Category
	Color    string
	Glyph    string
}

var pins = map[models.Category]Pin{
	models.CategoryPG:         {Category: models.CategoryPG, Color: "#2563eb", Glyph: "home"},
	models.CategoryHotel:      {Category: models.CategoryHotel, Color: "#059669", Glyph: "coffee"},
	models.CategoryRestaurant: {Category: models.CategoryRestaurant, Color: "#ea580c", Glyph: "utensils"},
	models.CategoryAttraction: {Category: models.CategoryAttraction, Color: "#9333ea", Glyph: "landmark"},
	models.CategoryOther:      {Category: models.CategoryOther, Color: "#6b7280", Glyph: "map-pin"},
}

// PinFor returns the pin for a category. Anything outside the known set gets
// the "other" pin.
func PinFor(category models.Category) Pin {
	if p, ok := pins[category]; ok {
		return p
	}
	return pins[models.CategoryOther]
}

// glyphPaths are 24x24 stroke icons.
var glyphPaths = map[string]string{
	"home": `<path d="M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8"/>` +
		`<path d="M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/>`,
	"coffee": `<path d="M10 2v2"/><path d="M14 2v2"/><path d="M6 2v2"/>` +
		`<path d="M16 8a1 1 0 0 1 1 1v8a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4V9a1 1 0 0 1 1-1h14a4 4 0 1 1 0 8h-1"/>`,
	"utensils": `<path d="M3 2v7c0 1.1.9 2 2 2h4a2 2 0 0 0 2-2V2"/><path d="M7 2v20"/>` +
		`<path d="M21 15V2a5 5 0 0 0-5 5v6c0 1.1.9 2 2 2h3Zm0 0v7"/>`,
	"landmark": `<line x1="3" x2="21" y1="22" y2="22"/><line x1="6" x2="6" y1="18" y2="11"/>` +
		`<line x1="10" x2="10" y1="18" y2="11"/><line x1="14" x2="14" y1="18" y2="11"/>` +
		`<line x1="18" x2="18" y1="18" y2="11"/><polygon points="12 2 20 7 4 7"/>`,
	"map-pin": `<path d="M20 10c0 4.993-5.539 10.193-7.399 11.799a1 1 0 0 1-1.202 0C9.539 20.193 4 14.993 4 10a8 8 0 0 1 16 0"/>` +
		`<circle cx="12" cy="10" r="3"/>`,
}

// GlyphSVG returns the bare glyph as a 16px white stroke icon.
func (p Pin) GlyphSVG() template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="16" height="16" fill="none" stroke="white" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</svg>`,
		glyphPaths[p.Glyph]))
}

// IconHTML is the teardrop marker with the glyph inset near the top.
func (p Pin) IconHTML() template.HTML {
	return template.HTML(fmt.Sprintf(
		`<div class="marker-container" style="position:relative;width:36px;height:48px;">`+
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 36 48" width="36" height="48" style="position:absolute;top:0;left:0;filter:drop-shadow(0px 4px 6px rgba(0,0,0,0.3));">`+
			`<path d="M18 0C8.06 0 0 8.06 0 18c0 13.5 18 30 18 30s18-16.5 18-30C36 8.06 27.94 0 18 0z" fill="%s" stroke="white" stroke-width="2.5"/>`+
			`</svg>`+
			`<div style="position:absolute;top:8px;left:8px;width:20px;height:20px;display:flex;align-items:center;justify-content:center;">%s</div>`+
			`</div>`,
		p.Color, p.GlyphSVG()))
}

// GlyphIcon renders a named glyph at size px in the current text color.
// Unknown names fall back to the map pin.
func GlyphIcon(name string, size int) template.HTML {
	path, ok := glyphPaths[name]
	if !ok {
		path = glyphPaths["map-pin"]
	}
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="%d" height="%d" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</svg>`,
		size, size, path))
}
