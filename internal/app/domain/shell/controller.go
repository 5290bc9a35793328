package shell

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/recommend"
	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/observability/metrics"
)

var errNoResult = errors.New("search returned no result")

// Controller owns the ViewState of one session. All transitions take the
// mutex; the model call in Search runs without it.
type Controller struct {
	mu         sync.Mutex
	state      ViewState
	device     *models.GeoPoint
	generation uint64

	searcher recommend.Service
	logger   *zap.Logger
}

// NewController returns a controller in its initial state: location idle,
// map on center, no result.
func NewController(searcher recommend.Service, center models.GeoPoint, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !center.Valid() {
		center = models.DefaultCenter
	}
	return &Controller{
		state: ViewState{
			Geolocation: GeoIdle,
			MapCenter:   center,
		},
		searcher: searcher,
		logger:   logger,
	}
}

// Snapshot returns a copy of the current state. The Result is shared and must
// be treated as read-only.
func (c *Controller) Snapshot() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DeviceLocation returns the last acquired device location, if any.
func (c *Controller) DeviceLocation() *models.GeoPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return nil
	}
	return c.device.Ptr()
}

// BeginSearch starts a search. Whitespace-only queries are ignored and leave
// the state untouched.
func (c *Controller) BeginSearch(query string, trigger Trigger) (Ticket, bool) {
	if strings.TrimSpace(query) == "" {
		return Ticket{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state.QueryText = query
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.state.Result = nil
	c.state.MapWasPanned = false

	ticket := Ticket{Generation: c.generation, Query: query, Trigger: trigger}
	switch {
	case trigger == TriggerArea:
		ticket.Location = c.state.MapCenter.Ptr()
	case c.device != nil:
		ticket.Location = c.device.Ptr()
	}
	return ticket, true
}

// CompleteSearch applies the outcome of a search. It reports false, and
// changes nothing, when a newer search has started since ticket was issued.
func (c *Controller) CompleteSearch(ticket Ticket, result *models.SearchResult, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket.Generation != c.generation {
		return false
	}

	c.state.Loading = false
	if err == nil && result == nil {
		err = models.ServiceError("shell.CompleteSearch", errNoResult)
	}
	if err != nil {
		c.state.ErrorMessage = models.UserMessage(err)
		c.state.Result = nil
		return true
	}

	c.state.Result = result
	if first, ok := result.FirstLocated(); ok {
		c.state.MapCenter = *first.Location
	}
	return true
}

// Search runs a complete search. It returns false when the query was ignored.
// Loading is cleared on every exit path, including a panic in the searcher.
func (c *Controller) Search(ctx context.Context, query string, trigger Trigger) bool {
	ctx, span := otel.Tracer("ShellController").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("trigger", string(trigger)),
	))
	defer span.End()

	l := c.logger.With(zap.String("method", "Search"), zap.String("trigger", string(trigger)))

	ticket, ok := c.BeginSearch(query, trigger)
	if !ok {
		recordSearch(ctx, trigger, "ignored")
		span.SetStatus(codes.Ok, "blank query ignored")
		return false
	}
	span.SetAttributes(
		attribute.Int64("generation", int64(ticket.Generation)),
		attribute.Bool("location.present", ticket.Location != nil),
	)

	var (
		result *models.SearchResult
		err    error
	)
	defer func() {
		outcome := "ok"
		if err != nil || result == nil {
			outcome = "error"
		}
		if !c.CompleteSearch(ticket, result, err) {
			outcome = "stale"
			l.Info("Discarded stale search result", zap.Uint64("generation", ticket.Generation))
		}
		recordSearch(ctx, trigger, outcome)
	}()

	result, err = c.searcher.Search(ctx, ticket.Query, ticket.Location)
	if err != nil {
		l.Warn("Search failed", zap.String("kind", models.KindOf(err).String()), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return true
	}

	span.SetStatus(codes.Ok, "search completed")
	return true
}

// MapMoved records a pan or zoom. It never starts a search.
func (c *Controller) MapMoved(center models.GeoPoint) {
	c.mu.Lock()
	c.state.MapCenter = center
	c.state.MapWasPanned = true
	c.mu.Unlock()

	metrics.Get().MapMovesTotal.Add(context.Background(), 1)
}

func recordSearch(ctx context.Context, trigger Trigger, outcome string) {
	metrics.Get().SearchRequestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger", string(trigger)),
		attribute.String("outcome", outcome),
	))
}
