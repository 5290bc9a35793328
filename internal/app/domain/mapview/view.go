package mapview

import (
	"html/template"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// Marker is one pin as the client script draws it.
type Marker struct {
	Name      string          `json:"name"`
	Category  models.Category `json:"category"`
	Lat       float64         `json:"lat"`
	Lng       float64         `json:"lng"`
	Color     string          `json:"color"`
	IconHTML  template.HTML   `json:"iconHtml"`
	PopupHTML template.HTML   `json:"popupHtml"`
}

// View is the complete description of what the map shows.
type View struct {
	Center      [2]float64 `json:"center"`
	Zoom        int        `json:"zoom"`
	TileURL     string     `json:"tileUrl"`
	Attribution string     `json:"attribution"`
	IconSize    [2]int     `json:"iconSize"`
	IconAnchor  [2]int     `json:"iconAnchor"`
	PopupAnchor [2]int     `json:"popupAnchor"`
	Markers     []Marker   `json:"markers"`
}

// Render computes the view for a set of places around center. It has no side
// effects: identical inputs give identical views. Places without a usable
// location are left off the map. Zoom is only the initial value; the client
// keeps the user's zoom when the center moves.
func (c Config) Render(places []models.Place, center models.GeoPoint) View {
	c = c.WithDefaults()
	if !center.Valid() {
		center = models.DefaultCenter
	}

	markers := make([]Marker, 0, len(places))
	for _, p := range places {
		if !p.HasLocation() {
			continue
		}
		pin := PinFor(p.Category)
		markers = append(markers, Marker{
			Name:      p.Name,
			Category:  pin.Category,
			Lat:       p.Location.Latitude,
			Lng:       p.Location.Longitude,
			Color:     pin.Color,
			IconHTML:  pin.IconHTML(),
			PopupHTML: PopupHTML(p),
		})
	}

	return View{
		Center:      [2]float64{center.Latitude, center.Longitude},
		Zoom:        c.DefaultZoom,
		TileURL:     c.TileURL,
		Attribution: c.Attribution,
		IconSize:    IconSize,
		IconAnchor:  IconAnchor,
		PopupAnchor: PopupAnchor,
		Markers:     markers,
	}
}
