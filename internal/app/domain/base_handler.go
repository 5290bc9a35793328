package domain

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/models"
	"github.com/FACorreiaa/go-nammaguide/internal/app/pages"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

// IsHTMX reports whether the request came from an HTMX swap.
func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func (h *BaseHandler) newLayoutData(title, activeNav string, header, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Header:    header,
		Nav:       models.MainNav,
		ActiveNav: activeNav,
	}
}

// Render writes component with status.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
	}
}

// RenderPage writes the full document, or only content for HTMX requests.
func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, header, content templ.Component) {
	if IsHTMX(c) {
		h.Render(c, http.StatusOK, content)
		return
	}
	h.Render(c, http.StatusOK, pages.LayoutPage(h.newLayoutData(title, activeNav, header, content)))
}

// RenderError writes an error banner. Non-HTMX callers get plain JSON.
func (h *BaseHandler) RenderError(c *gin.Context, status int, message string) {
	if IsHTMX(c) {
		h.Render(c, status, pages.ErrorMessage(message))
		return
	}
	c.JSON(status, gin.H{"error": message})
}
