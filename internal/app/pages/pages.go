// Package pages holds the HTML views of the guide. Page templates are embedded
// html/template files exposed as templ components; small partials are written
// directly as templ components.
package pages

import (
	"context"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/observability/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.New("pages").Funcs(template.FuncMap{
	"trim": strings.TrimSpace,
}).ParseFS(templateFS, "templates/*.html"))

// PresetLink is a quick link button.
type PresetLink struct {
	ID    string
	Label string
	Icon  template.HTML
}

// PlaceCard is one structured place in the result lists.
type PlaceCard struct {
	Name        string
	Category    models.Category
	Label       string
	Description string
	URL         string
	Attraction  bool
}

const (
	cardBase        = "flex flex-col p-4 rounded-lg border border-stone-200 bg-stone-50"
	cardAttraction  = "bg-purple-50/50"
	linkBase        = "inline-flex items-center justify-center gap-2 px-4 py-2 bg-emerald-100 text-emerald-800 hover:bg-emerald-200 rounded-lg text-sm font-medium"
	linkAttraction  = "bg-purple-100 text-purple-800 hover:bg-purple-200"
	navLinkBase     = "hover:text-white"
	navLinkSelected = "text-white font-semibold"
)

// CardClass is the card container class, tinted for attractions.
func (p PlaceCard) CardClass() string {
	if p.Attraction {
		return twmerge.Merge(cardBase, cardAttraction)
	}
	return cardBase
}

// LinkClass is the Maps link class, tinted for attractions.
func (p PlaceCard) LinkClass() string {
	if p.Attraction {
		return twmerge.Merge(linkBase, linkAttraction)
	}
	return linkBase
}

// AreaButton is the floating "Search this area" affordance.
type AreaButton struct {
	Visible bool
	Query   string
}

// ResultsView is the results region of the guide page.
type ResultsView struct {
	Loading     bool
	Error       string
	HasResult   bool
	ProseHTML   template.HTML
	Main        []PlaceCard
	Attractions []PlaceCard
	Citations   []models.Citation
	// MapJSON is the serialized map view consumed by the client script.
	MapJSON string
	Area    AreaButton
}

// GuideView is the main page body.
type GuideView struct {
	City    string
	Query   string
	Presets []PresetLink
	Results ResultsView
}

// LocationBadge shows the geolocation status in the header.
type LocationBadge struct {
	Status  string
	Message string
	// Center is "lat,lng" after a successful fix, used to recenter the map.
	Center string
}

type navLink struct {
	Name, URL, Class string
}

// render executes a named template and records how long it took.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		start := time.Now()
		err := templ.FromGoHTML(views.Lookup(name), data).Render(ctx, w)
		metrics.Get().TemplateRenderDuration.Record(ctx, time.Since(start).Seconds())
		return err
	})
}

// LayoutPage wraps content in the full HTML document.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var header, content template.HTML
		var err error
		if data.Header != nil {
			if header, err = templ.ToGoHTML(ctx, data.Header); err != nil {
				return err
			}
		}
		if data.Content != nil {
			if content, err = templ.ToGoHTML(ctx, data.Content); err != nil {
				return err
			}
		}

		nav := make([]navLink, 0, len(data.Nav.Items))
		for _, item := range data.Nav.Items {
			class := navLinkBase
			if item.Name == data.ActiveNav {
				class = twmerge.Merge(navLinkBase, navLinkSelected)
			}
			nav = append(nav, navLink{Name: item.Name, URL: item.URL, Class: class})
		}

		return render("layout", struct {
			Title   string
			Nav     []navLink
			Header  template.HTML
			Content template.HTML
		}{data.Title, nav, header, content}).Render(ctx, w)
	})
}

// Guide is the main page body.
func Guide(v GuideView) templ.Component {
	return render("guide", v)
}

// Results is the swappable results region.
func Results(v ResultsView) templ.Component {
	return render("results", v)
}

// Area is the "Search this area" slot.
func Area(a AreaButton) templ.Component {
	return render("area", a)
}

const (
	locationClass = "flex items-center gap-2 text-sm bg-emerald-900/50 px-3 py-1.5 rounded-full"
	errorClass    = "bg-red-50 border border-red-200 text-red-700 p-4 rounded-xl"
)

// Location is the header geolocation badge.
func Location(b LocationBadge) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div id="location" class="` + locationClass + `" data-status="` + templ.EscapeString(b.Status) + `"`)
		if b.Center != "" {
			sb.WriteString(` data-center="` + templ.EscapeString(b.Center) + `"`)
		}
		sb.WriteString(">")
		switch b.Status {
		case "loading":
			sb.WriteString("<span>Locating you...</span>")
		case "success":
			sb.WriteString("<span>Location active</span>")
		case "error":
			sb.WriteString(`<button type="button" hx-post="/location/start" hx-target="#location" hx-swap="outerHTML" ` +
				`class="underline hover:text-emerald-200" title="` + templ.EscapeString(b.Message) + `">Enable Location</button>`)
		default:
			sb.WriteString("<span>Location idle</span>")
		}
		sb.WriteString("</div>")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// ErrorMessage is a standalone error banner.
func ErrorMessage(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="`+errorClass+`" role="alert">`+templ.EscapeString(msg)+`</div>`)
		return err
	})
}
