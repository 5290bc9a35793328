package mapview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
)

func TestDispatch(t *testing.T) {
	moved := models.GeoPoint{Latitude: 12.98, Longitude: 77.64}

	tests := []struct {
		name     string
		event    Event
		wantCall bool
	}{
		{name: "drag end", event: Event{Kind: EventDragEnd, Center: moved}, wantCall: true},
		{name: "zoom end", event: Event{Kind: EventZoomEnd, Center: moved}, wantCall: true},
		{name: "unknown kind", event: Event{Kind: "click", Center: moved}},
		{name: "invalid center", event: Event{Kind: EventDragEnd, Center: models.GeoPoint{Latitude: 95, Longitude: 77}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []models.GeoPoint
			err := Dispatch(tt.event, func(p models.GeoPoint) { got = append(got, p) })

			if tt.wantCall {
				assert.NoError(t, err)
				assert.Equal(t, []models.GeoPoint{moved}, got)
			} else {
				assert.True(t, errors.Is(err, models.ErrBadRequest))
				assert.Empty(t, got)
			}
		})
	}
}
