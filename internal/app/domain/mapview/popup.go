package mapview

import (
	"bytes"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

var popupTmpl = template.Must(template.New("popup").Parse(
	`<div class="font-sans min-w-[200px]">` +
		`<h3 class="font-bold text-lg text-stone-800 leading-tight mb-1">{{.Name}}</h3>` +
		`<span class="inline-block px-2 py-0.5 bg-stone-100 text-stone-600 text-xs rounded-full mb-2 border border-stone-200">{{.Label}}</span>` +
		`{{if .Description}}<p class="text-sm text-stone-600 leading-snug mb-3">{{.Description}}</p>{{end}}` +
		`<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" ` +
		`class="inline-flex items-center justify-center gap-1.5 px-3 py-1.5 bg-emerald-600 text-white hover:bg-emerald-700 rounded-md text-xs font-medium w-full">` +
		`View on Google Maps</a>` +
		`</div>`))

// CategoryLabel is the display form of a category, e.g. "Restaurant". PGs stay
// upper case.
func CategoryLabel(c models.Category) string {
	if c == models.CategoryPG {
		return "PG"
	}
	return cases.Title(language.English).String(string(c))
}

// PopupHTML renders the marker popup for a place.
func PopupHTML(p models.Place) template.HTML {
	var buf bytes.Buffer
	err := popupTmpl.Execute(&buf, struct {
		Name, Label, Description, URL string
	}{
		Name:        p.Name,
		Label:       CategoryLabel(p.Category),
		Description: p.Description,
		URL:         p.MapsURL(),
	})
	if err != nil {
		return template.HTML(template.HTMLEscapeString(p.Name))
	}
	return template.HTML(buf.String())
}
