package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/domain"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/guide"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/mapview"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/recommend"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/shell"
	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/pkg/config"
	"github.com/FACorreiaa/go-nammaguide/internal/pkg/markdown"
)

// Dependencies are the external collaborators the routes need.
type Dependencies struct {
	Config    *config.Config
	Generator recommend.Generator
}

type AppHandlers struct {
	Guide *guide.GuideHandlers
}

// Setup wires the services and registers every route on r.
func Setup(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	handlers := setupDependencies(deps, log)
	setupRouter(r, handlers)
}

func setupDependencies(deps Dependencies, log *zap.Logger) *AppHandlers {
	cfg := deps.Config
	baseHandler := domain.NewBaseHandler(log)

	recommendService := recommend.NewRecommendService(deps.Generator, cfg.City, log)

	center := models.GeoPoint{Latitude: cfg.Map.DefaultLat, Longitude: cfg.Map.DefaultLng}
	if !center.Valid() {
		center = models.DefaultCenter
	}
	sessions := shell.NewStore(cfg.Session.TTL, func() *shell.Controller {
		return shell.NewController(recommendService, center, log)
	}, log)

	mapCfg := mapview.Config{
		TileURL:     cfg.Map.TileURL,
		DefaultZoom: cfg.Map.DefaultZoom,
	}

	return &AppHandlers{
		Guide: guide.NewGuideHandlers(baseHandler, sessions, mapCfg, markdown.New(), cfg.City, log),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", h.Guide.Healthz)

	public := r.Group("/")
	{
		public.GET("/", h.Guide.ShowGuide)
		public.POST("/search", h.Guide.Search)
		public.GET("/export.kml", h.Guide.ExportKML)
	}

	mapGroup := r.Group("/map")
	{
		mapGroup.POST("/move", h.Guide.MapMove)
	}

	locationGroup := r.Group("/location")
	{
		locationGroup.POST("/start", h.Guide.StartLocation)
		locationGroup.POST("/report", h.Guide.ReportLocation)
	}
}
