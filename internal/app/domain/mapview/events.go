package mapview

import (
	"fmt"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

// EventKind names a map surface gesture.
type EventKind string

const (
	EventDragEnd EventKind = "dragend"
	EventZoomEnd EventKind = "zoomend"
)

// Event is a move notification reported by the client script.
type Event struct {
	Kind   EventKind
	Center models.GeoPoint
}

// Dispatch forwards pans and zooms to onMapMove with the new center. The two
// gestures are indistinguishable to the caller.
func Dispatch(ev Event, onMapMove func(models.GeoPoint)) error {
	switch ev.Kind {
	case EventDragEnd, EventZoomEnd:
	default:
		return fmt.Errorf("%w: unknown map event %q", models.ErrBadRequest, ev.Kind)
	}
	if !ev.Center.Valid() {
		return fmt.Errorf("%w: map center %s out of range", models.ErrBadRequest, ev.Center)
	}
	onMapMove(ev.Center)
	return nil
}
