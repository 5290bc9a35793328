package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		point GeoPoint
		want  bool
	}{
		{name: "city centre", point: DefaultCenter, want: true},
		{name: "southern hemisphere", point: GeoPoint{Latitude: -33.86, Longitude: 151.2}, want: true},
		{name: "zero value", point: GeoPoint{}, want: false},
		{name: "zero longitude", point: GeoPoint{Latitude: 12.9, Longitude: 0}, want: false},
		{name: "latitude out of range", point: GeoPoint{Latitude: 91, Longitude: 77.5}, want: false},
		{name: "longitude out of range", point: GeoPoint{Latitude: 12.9, Longitude: -181}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.Valid())
		})
	}
}

func TestGeoPoint_Ptr(t *testing.T) {
	p := DefaultCenter
	ptr := p.Ptr()
	ptr.Latitude = 1

	assert.Equal(t, 12.9716, p.Latitude)
	assert.Equal(t, "12.971600,77.594600", DefaultCenter.String())
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"pg":         CategoryPG,
		" Hotel ":    CategoryHotel,
		"RESTAURANT": CategoryRestaurant,
		"attraction": CategoryAttraction,
		"other":      CategoryOther,
		"coworking":  CategoryOther,
		"":           CategoryOther,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseCategory(in), "input %q", in)
	}
}

func TestPlace_MapsURL(t *testing.T) {
	located := Place{Name: "Lalbagh", Location: &GeoPoint{Latitude: 12.9507, Longitude: 77.5848}}
	assert.True(t, located.HasLocation())
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=12.9507,77.5848", located.MapsURL())

	unlocated := Place{Name: "Brigade Road & MG Road"}
	assert.False(t, unlocated.HasLocation())
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Brigade+Road+%26+MG+Road", unlocated.MapsURL())
}

func TestSearchResult_FirstLocated(t *testing.T) {
	var nilResult *SearchResult
	_, ok := nilResult.FirstLocated()
	assert.False(t, ok)

	r := &SearchResult{Places: []Place{
		{Name: "No coords"},
		{Name: "Zero coords", Location: &GeoPoint{}},
		{Name: "Cubbon Park", Location: &GeoPoint{Latitude: 12.9763, Longitude: 77.5929}},
		{Name: "Later", Location: &GeoPoint{Latitude: 12.9, Longitude: 77.6}},
	}}
	first, ok := r.FirstLocated()
	assert.True(t, ok)
	assert.Equal(t, "Cubbon Park", first.Name)
}

func TestParseOutcome_String(t *testing.T) {
	assert.Equal(t, "success", ParseSuccess.String())
	assert.Equal(t, "partial", ParsePartial.String())
	assert.Equal(t, "failure", ParseFailure.String())
}

func TestErrors(t *testing.T) {
	cause := errors.New("429 quota exceeded")

	svc := ServiceError("recommend.Search", cause)
	assert.Equal(t, KindService, KindOf(svc))
	assert.Equal(t, GenericServiceMessage, UserMessage(svc))
	assert.ErrorIs(t, svc, cause)
	assert.NotContains(t, UserMessage(svc), "quota")
	assert.Equal(t, "recommend.Search: "+GenericServiceMessage, svc.Error())

	wrapped := fmt.Errorf("search: %w", PermissionError("", cause))
	assert.Equal(t, KindPermission, KindOf(wrapped))
	assert.Equal(t, "location permission denied", UserMessage(wrapped))

	val := ValidationError("query is required", ErrEmptyQuery)
	assert.ErrorIs(t, val, ErrValidation)
	assert.ErrorIs(t, val, ErrEmptyQuery)
	assert.Equal(t, "validation", KindOf(val).String())

	assert.Equal(t, KindParse, KindOf(ParseError(cause)))
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, GenericServiceMessage, UserMessage(cause))
}
