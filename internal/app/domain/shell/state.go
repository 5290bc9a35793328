package shell

import "github.com/FACorreiaa/go-nammaguide/internal/app/models"

// GeolocationStatus is the state of device location acquisition.
type GeolocationStatus string

const (
	GeoIdle    GeolocationStatus = "idle"
	GeoLoading GeolocationStatus = "loading"
	GeoSuccess GeolocationStatus = "success"
	GeoError   GeolocationStatus = "error"
)

// Trigger says what started a search.
type Trigger string

const (
	TriggerSubmit Trigger = "submit"
	TriggerEnter  Trigger = "enter"
	TriggerPreset Trigger = "preset"
	// TriggerArea searches around the current map center ("Search this area").
	TriggerArea Trigger = "area"
)

// ParseTrigger maps a form value onto a Trigger, defaulting to submit.
func ParseTrigger(s string) Trigger {
	switch t := Trigger(s); t {
	case TriggerEnter, TriggerPreset, TriggerArea:
		return t
	default:
		return TriggerSubmit
	}
}

// ViewState is everything the page shows. Loading and ErrorMessage are never
// both set.
type ViewState struct {
	QueryText     string
	Loading       bool
	ErrorMessage  string
	Geolocation   GeolocationStatus
	LocationError string
	MapCenter     models.GeoPoint
	MapWasPanned  bool
	Result        *models.SearchResult
}

// Ticket identifies one search. Completions holding an outdated generation
// are dropped.
type Ticket struct {
	Generation uint64
	Query      string
	Trigger    Trigger
	Location   *models.GeoPoint
}
