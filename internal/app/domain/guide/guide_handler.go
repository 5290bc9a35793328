package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/domain"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/mapview"
	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/shell"
	"github.com/FACorreiaa/go-nammaguide/internal/app/middleware"
	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/pages"
)

const pageTitle = "Namma Bengaluru Guide"

type GuideHandlers struct {
	*domain.BaseHandler
	sessions *shell.Store
	mapCfg   mapview.Config
	prose    shell.ProseRenderer
	city     string
	logger   *zap.Logger
}

func NewGuideHandlers(base *domain.BaseHandler, sessions *shell.Store, mapCfg mapview.Config, prose shell.ProseRenderer, city string, logger *zap.Logger) *GuideHandlers {
	return &GuideHandlers{
		BaseHandler: base,
		sessions:    sessions,
		mapCfg:      mapCfg.WithDefaults(),
		prose:       prose,
		city:        city,
		logger:      logger,
	}
}

type searchForm struct {
	Query   string `form:"q" binding:"max=500"`
	Preset  string `form:"preset"`
	Trigger string `form:"trigger"`
}

type mapMoveRequest struct {
	Event string  `form:"event" json:"event" binding:"required,oneof=dragend zoomend"`
	Lat   float64 `form:"lat" json:"lat" binding:"latitude"`
	Lng   float64 `form:"lng" json:"lng" binding:"longitude"`
}

type locationReport struct {
	Lat   *float64 `form:"lat" json:"lat" binding:"omitempty,latitude"`
	Lng   *float64 `form:"lng" json:"lng" binding:"omitempty,longitude"`
	Error string   `form:"error" json:"error" binding:"max=200"`
	Code  int      `form:"code" json:"code"`
}

func (h *GuideHandlers) controller(c *gin.Context) *shell.Controller {
	return h.sessions.Controller(middleware.GetSessionIDFromContext(c))
}

// ShowGuide renders the whole page for the session's current state.
func (h *GuideHandlers) ShowGuide(c *gin.Context) {
	state := h.controller(c).Snapshot()

	presets := make([]pages.PresetLink, 0, len(shell.Presets))
	for _, p := range shell.Presets {
		presets = append(presets, pages.PresetLink{ID: p.ID, Label: p.Label, Icon: mapview.GlyphIcon(p.Icon, 16)})
	}

	content := pages.Guide(pages.GuideView{
		City:    h.city,
		Query:   state.QueryText,
		Presets: presets,
		Results: h.resultsView(state),
	})
	h.RenderPage(c, pageTitle, "Guide", pages.Location(locationBadge(state)), content)
}

// Search runs a query for the session. HTMX callers get the results region;
// plain form posts are redirected back to the page.
func (h *GuideHandlers) Search(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBind(&form); err != nil {
		h.RenderError(c, http.StatusBadRequest, "Invalid search request.")
		return
	}

	trigger := shell.ParseTrigger(form.Trigger)
	query := form.Query
	if form.Preset != "" {
		preset, ok := shell.PresetByID(form.Preset)
		if !ok {
			h.RenderError(c, http.StatusBadRequest, "Unknown quick link.")
			return
		}
		query, trigger = preset.Query, shell.TriggerPreset
	}

	ctrl := h.controller(c)
	if trigger == shell.TriggerArea && strings.TrimSpace(query) == "" {
		query = ctrl.Snapshot().QueryText
	}

	if !ctrl.Search(c.Request.Context(), query, trigger) {
		h.logger.Debug("Ignored blank query", zap.String("trigger", string(trigger)))
	}

	if !domain.IsHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.Render(c, http.StatusOK, pages.Results(h.resultsView(ctrl.Snapshot())))
}

// MapMove records a pan or zoom reported by the map and returns the
// "Search this area" slot.
func (h *GuideHandlers) MapMove(c *gin.Context) {
	var req mapMoveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.RenderError(c, http.StatusBadRequest, "Invalid map event.")
		return
	}

	ctrl := h.controller(c)
	ev := mapview.Event{
		Kind:   mapview.EventKind(req.Event),
		Center: models.GeoPoint{Latitude: req.Lat, Longitude: req.Lng},
	}
	if err := mapview.Dispatch(ev, ctrl.MapMoved); err != nil {
		h.RenderError(c, http.StatusBadRequest, "Invalid map event.")
		return
	}

	state := ctrl.Snapshot()
	h.Render(c, http.StatusOK, pages.Area(areaButton(state)))
}

// StartLocation begins (or retries) device location acquisition. The badge
// it returns tells the client script to ask the browser for a position.
func (h *GuideHandlers) StartLocation(c *gin.Context) {
	ctrl := h.controller(c)
	ctrl.BeginLocate()
	h.Render(c, http.StatusOK, pages.Location(locationBadge(ctrl.Snapshot())))
}

// ReportLocation applies the browser's geolocation outcome.
func (h *GuideHandlers) ReportLocation(c *gin.Context) {
	var req locationReport
	if err := c.ShouldBind(&req); err != nil {
		h.RenderError(c, http.StatusBadRequest, "Invalid location report.")
		return
	}

	ctrl := h.controller(c)
	ctrl.Locate(c.Request.Context(), shell.LocatorFunc(func(context.Context) (models.GeoPoint, error) {
		return req.position()
	}))
	h.Render(c, http.StatusOK, pages.Location(locationBadge(ctrl.Snapshot())))
}

// ExportKML downloads the pins currently on the map.
func (h *GuideHandlers) ExportKML(c *gin.Context) {
	state := h.controller(c).Snapshot()
	var places []models.Place
	if state.Result != nil {
		places = state.Result.Places
	}
	view := h.mapCfg.Render(places, state.MapCenter)

	c.Header("Content-Type", "application/vnd.google-earth.kml+xml")
	c.Header("Content-Disposition", `attachment; filename="namma-guide.kml"`)
	c.Status(http.StatusOK)
	if err := mapview.WriteKML(c.Writer, pageTitle, view); err != nil {
		h.logger.Error("Failed to write KML", zap.Error(err))
		_ = c.Error(err)
	}
}

// Healthz reports liveness and the number of live sessions.
func (h *GuideHandlers) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
}

// position turns a browser report into a fix or a permission error.
func (r locationReport) position() (models.GeoPoint, error) {
	if r.Error != "" || r.Lat == nil || r.Lng == nil {
		msg := r.Error
		if msg == "" {
			msg = "Geolocation is not supported by this browser"
		}
		return models.GeoPoint{}, models.PermissionError(msg, fmt.Errorf("geolocation error code %d", r.Code))
	}
	return models.GeoPoint{Latitude: *r.Lat, Longitude: *r.Lng}, nil
}

func (h *GuideHandlers) resultsView(state shell.ViewState) pages.ResultsView {
	v := pages.ResultsView{
		Loading:   state.Loading,
		Error:     state.ErrorMessage,
		HasResult: state.Result != nil,
		Area:      areaButton(state),
	}
	if state.Result == nil {
		return v
	}

	p := shell.Present(state.Result, h.prose)
	v.ProseHTML = p.ProseHTML
	v.Main = placeCards(p.Main)
	v.Attractions = placeCards(p.Attractions)
	v.Citations = p.Citations

	view := h.mapCfg.Render(state.Result.Places, state.MapCenter)
	raw, err := json.Marshal(view)
	if err != nil {
		h.logger.Error("Failed to encode map view", zap.Error(err))
		return v
	}
	v.MapJSON = string(raw)
	return v
}

func placeCards(places []models.Place) []pages.PlaceCard {
	cards := make([]pages.PlaceCard, 0, len(places))
	for _, p := range places {
		cards = append(cards, pages.PlaceCard{
			Name:        p.Name,
			Category:    p.Category,
			Label:       mapview.CategoryLabel(p.Category),
			Description: p.Description,
			URL:         p.MapsURL(),
			Attraction:  p.Category == models.CategoryAttraction,
		})
	}
	return cards
}

func areaButton(state shell.ViewState) pages.AreaButton {
	return pages.AreaButton{
		Visible: state.MapWasPanned && strings.TrimSpace(state.QueryText) != "",
		Query:   state.QueryText,
	}
}

func locationBadge(state shell.ViewState) pages.LocationBadge {
	b := pages.LocationBadge{Status: string(state.Geolocation), Message: state.LocationError}
	if state.Geolocation == shell.GeoSuccess {
		b.Center = fmt.Sprintf("%v,%v", state.MapCenter.Latitude, state.MapCenter.Longitude)
	}
	return b
}
