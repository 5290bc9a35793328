package mapview

import (
	"io"

	"github.com/twpayne/go-kml/v2"
)

// WriteKML exports the rendered markers as a KML document, one Placemark per
// marker.
func WriteKML(w io.Writer, title string, view View) error {
	placemarks := make([]kml.Element, 0, len(view.Markers))
	for _, m := range view.Markers {
		placemarks = append(placemarks, kml.Placemark(
			kml.Name(m.Name),
			kml.Description(CategoryLabel(m.Category)),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: m.Lng, Lat: m.Lat}),
			),
		))
	}

	doc := kml.KML(
		kml.Document(append([]kml.Element{kml.Name(title)}, placemarks...)...),
	)
	return doc.WriteIndent(w, "", "  ")
}
