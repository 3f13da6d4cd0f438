package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chefpay/internal/catalog"
	"chefpay/internal/editor"
	"chefpay/internal/logging"
	"chefpay/internal/menu"
	"chefpay/internal/middleware"
	"chefpay/internal/remote"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	editors   *editor.Service
	catalog   *catalog.Service
	publisher *Publisher
	logger    zerolog.Logger
}

// NewHandler wires the export routes. publisher may be nil when object
// storage is not configured.
func NewHandler(editors *editor.Service, catalogService *catalog.Service, publisher *Publisher) *Handler {
	return &Handler{
		editors:   editors,
		catalog:   catalogService,
		publisher: publisher,
		logger:    logging.Component("export"),
	}
}

// load returns a copy of the caller's open assignment plus the canteen items.
func (h *Handler) load(c *gin.Context) (context.Context, *menu.Assignment, []catalog.MenuItem, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, nil, nil, false
	}

	canteenID := c.GetInt("canteenID")
	ed, err := h.editors.Get(p, canteenID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, nil, nil, false
	}

	ctx := remote.WithToken(c.Request.Context(), c.GetString("authToken"))
	items, err := h.catalog.Items(ctx, canteenID)
	if err != nil {
		h.logger.Error().Err(err).Int("canteen_id", canteenID).Msg("catalog fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch menu items"})
		return nil, nil, nil, false
	}

	return ctx, ed.Assignment(), items, true
}

// GET /api/canteens/:canteen_id/menu-editor/export
func (h *Handler) Download(c *gin.Context) {
	_, a, items, ok := h.load(c)
	if !ok {
		return
	}

	now := time.Now()
	body, err := Render(a, items, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, Filename(a.TenantID(), now)))
	c.Data(http.StatusOK, ContentType, body)
}

// POST /api/canteens/:canteen_id/menu-editor/export/publish
func (h *Handler) Publish(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export publishing is not configured"})
		return
	}

	ctx, a, items, ok := h.load(c)
	if !ok {
		return
	}

	pub, err := h.publisher.Publish(ctx, a, items)
	if err != nil {
		h.logger.Error().Err(err).Int("canteen_id", a.TenantID()).Msg("export publish failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to publish export"})
		return
	}

	c.JSON(http.StatusCreated, pub)
}
