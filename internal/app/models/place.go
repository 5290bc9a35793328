package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Category is the closed set of place kinds the guide knows how to render.
type Category string

const (
	CategoryPG         Category = "pg"
	CategoryHotel      Category = "hotel"
	CategoryRestaurant Category = "restaurant"
	CategoryAttraction Category = "attraction"
	CategoryOther      Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPG, CategoryHotel, CategoryRestaurant, CategoryAttraction, CategoryOther}

// ParseCategory maps a free-form type tag onto a Category. Unknown tags become
// CategoryOther.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryPG, CategoryHotel, CategoryRestaurant, CategoryAttraction:
		return c
	default:
		return CategoryOther
	}
}

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Place is a single structured recommendation returned by the model.
type Place struct {
	Name        string    `json:"name"`
	Location    *GeoPoint `json:"location,omitempty"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
}

// HasLocation reports whether the place can be pinned on a map.
func (p Place) HasLocation() bool {
	return p.Location != nil && p.Location.Valid()
}

// MapsURL links to a Google Maps search for the place. Places without usable
// coordinates are searched by name.
func (p Place) MapsURL() string {
	if p.HasLocation() {
		return mapsSearchURL + fmt.Sprintf("%v,%v", p.Location.Latitude, p.Location.Longitude)
	}
	return mapsSearchURL + url.QueryEscape(p.Name)
}

// Citation is a grounding source attached to the model's answer.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ParseOutcome describes how much of the structured block could be used.
type ParseOutcome int

const (
	// ParseFailure covers both a missing block and an undecodable one.
	ParseFailure ParseOutcome = iota
	// ParsePartial means the block decoded but some records were rejected.
	ParsePartial
	// ParseSuccess means every record in the block was accepted.
	ParseSuccess
)

func (o ParseOutcome) String() string {
	switch o {
	case ParseSuccess:
		return "success"
	case ParsePartial:
		return "partial"
	default:
		return "failure"
	}
}

// SearchResult is everything one query produces. It is replaced wholesale by
// the next query.
type SearchResult struct {
	Text         string       `json:"text"`
	Citations    []Citation   `json:"citations"`
	Places       []Place      `json:"places"`
	ParseOutcome ParseOutcome `json:"-"`
}

// FirstLocated returns the first place with usable coordinates.
func (r *SearchResult) FirstLocated() (Place, bool) {
	if r == nil {
		return Place{}, false
	}
	for _, p := range r.Places {
		if p.HasLocation() {
			return p, true
		}
	}
	return Place{}, false
}
