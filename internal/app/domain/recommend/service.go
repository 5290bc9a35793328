package recommend

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Generator is the single model call the service needs.
type Generator interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Service interface {
	Search(ctx context.Context, query string, location *models.GeoPoint) (*models.SearchResult, error)
}

type ServiceImpl struct {
	logger    *zap.Logger
	generator Generator
	city      string
}

func NewRecommendService(generator Generator, city string, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		city:      city,
	}
}

var errEmptyResponse = errors.New("model returned no candidates")

// Search asks the model for grounded recommendations and parses the answer.
// Upstream failures come back as a KindService *models.Error with the generic
// message; a missing or broken place block is not a failure.
func (s *ServiceImpl) Search(ctx context.Context, query string, location *models.GeoPoint) (*models.SearchResult, error) {
	ctx, span := otel.Tracer("RecommendService").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("query", query),
		attribute.Bool("location.present", location != nil),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Search"))

	if strings.TrimSpace(query) == "" {
		span.SetStatus(codes.Error, "empty query")
		return nil, models.ValidationError("query must not be empty", models.ErrEmptyQuery)
	}
	if location != nil {
		span.SetAttributes(
			attribute.Float64("location.latitude", location.Latitude),
			attribute.Float64("location.longitude", location.Longitude),
		)
	}

	prompt := BuildPrompt(s.city, query, location)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	start := time.Now()
	resp, err := s.generator.GenerateResponse(ctx, prompt, BuildConfig(location))
	metrics.Get().SearchDuration.Record(ctx, time.Since(start).Seconds())
	if err == nil && (resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil) {
		err = errEmptyResponse
	}
	if err != nil {
		l.Error("Model call failed", zap.String("query", query), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return nil, models.ServiceError("recommend.Search", err)
	}

	extraction := ExtractPlaces(resp.Text())
	citations := CitationsFromResponse(resp)

	metrics.Get().ParseOutcomesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", extraction.Outcome.String()),
	))
	switch extraction.Outcome {
	case models.ParseFailure:
		l.Warn("Place block unusable, continuing with prose only", zap.Error(extraction.Err))
	case models.ParsePartial:
		l.Warn("Some place records were rejected", zap.Int("rejected", extraction.Rejected))
	}

	span.SetAttributes(
		attribute.Int("response.length", len(extraction.Prose)),
		attribute.Int("places.count", len(extraction.Places)),
		attribute.Int("citations.count", len(citations)),
		attribute.String("parse.outcome", extraction.Outcome.String()),
	)
	l.Info("Recommendations ready",
		zap.Int("places", len(extraction.Places)),
		zap.Int("citations", len(citations)),
		zap.String("parse_outcome", extraction.Outcome.String()))
	span.SetStatus(codes.Ok, "recommendations generated")

	return &models.SearchResult{
		Text:         extraction.Prose,
		Citations:    citations,
		Places:       extraction.Places,
		ParseOutcome: extraction.Outcome,
	}, nil
}
