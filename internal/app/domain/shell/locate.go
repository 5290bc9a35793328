package shell

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/observability/metrics"
)

// Locator acquires the device position. Denial or lack of support is reported
// as an error.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.GeoPoint, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (models.GeoPoint, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (models.GeoPoint, error) {
	return f(ctx)
}

// BeginLocate moves geolocation to loading. It is accepted from idle, error
// (the "Enable Location" retry) and loading, where an earlier request is left
// running. Once a location has been acquired it reports false.
func (c *Controller) BeginLocate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Geolocation == GeoSuccess {
		return false
	}
	c.state.Geolocation = GeoLoading
	c.state.LocationError = ""
	recordLocation(GeoLoading)
	return true
}

// CompleteLocate applies an acquisition result. Completions are not ordered:
// whichever arrives last wins. A failure keeps the previously known location.
func (c *Controller) CompleteLocate(point models.GeoPoint, err error) GeolocationStatus {
	if err == nil && !point.Valid() {
		err = models.PermissionError("location unavailable", fmt.Errorf("invalid position %s", point))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state.Geolocation = GeoError
		c.state.LocationError = models.UserMessage(err)
		c.logger.Info("Location acquisition failed", zap.Error(err))
		recordLocation(GeoError)
		return GeoError
	}

	c.device = point.Ptr()
	c.state.Geolocation = GeoSuccess
	c.state.LocationError = ""
	c.state.MapCenter = point
	recordLocation(GeoSuccess)
	return GeoSuccess
}

// Locate runs one acquisition against loc. The outcome is applied even when
// a location is already known, so the latest report always wins.
func (c *Controller) Locate(ctx context.Context, loc Locator) GeolocationStatus {
	c.BeginLocate()
	point, err := loc.CurrentPosition(ctx)
	return c.CompleteLocate(point, err)
}

func recordLocation(status GeolocationStatus) {
	metrics.Get().LocationEventsTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("status", string(status)),
	))
}
