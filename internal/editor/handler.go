package editor

import (
	"errors"
	"net/http"
	"strconv"

	"chefpay/internal/core"
	"chefpay/internal/menu"
	"chefpay/internal/middleware"
	"chefpay/internal/remote"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the editor routes on a group that already carries
// AuthMiddleware and RequireCanteenAccess.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("", h.Open)
	g.GET("", h.State)
	g.DELETE("", h.Cancel)
	g.PUT("/mode", h.SetMode)
	g.PUT("/name", h.SetName)
	g.PUT("/weekdays/:day", h.ToggleWeekday)
	g.DELETE("/weekdays/:day", h.RemoveDay)
	g.PUT("/items/:item_id", h.ToggleItem)
	g.POST("/submit", h.Submit)
}

// respondError maps editor and menu errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verrs menu.ValidationErrors
	var remoteErr *remote.Error

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verrs})
	case errors.Is(err, ErrNoEditor):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSubmitInProgress),
		errors.Is(err, menu.ErrNoRemoteMenu),
		errors.Is(err, menu.ErrNotDaySpecific):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, menu.ErrInvalidMode),
		errors.Is(err, menu.ErrInvalidWeekday),
		errors.Is(err, menu.ErrInvalidTenant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &remoteErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":         err.Error(),
			"remote_status": remoteErr.StatusCode,
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func principal(c *gin.Context) (core.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return p, ok
}

// current resolves the caller's editor for the canteen in the path.
func (h *Handler) current(c *gin.Context) (*Editor, bool) {
	p, ok := principal(c)
	if !ok {
		return nil, false
	}

	e, err := h.service.Get(p, c.GetInt("canteenID"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return e, true
}

func parseDay(c *gin.Context) (menu.Weekday, bool) {
	day, err := menu.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	return day, true
}

// POST /api/canteens/:canteen_id/menu-editor
func (h *Handler) Open(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx := remote.WithToken(c.Request.Context(), c.GetString("authToken"))

	e, err := h.service.Open(ctx, p, c.GetInt("canteenID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e.State())
}

// GET /api/canteens/:canteen_id/menu-editor
func (h *Handler) State(c *gin.Context) {
	e, ok := h.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// DELETE /api/canteens/:canteen_id/menu-editor
func (h *Handler) Cancel(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(p, c.GetInt("canteenID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/canteens/:canteen_id/menu-editor/mode
func (h *Handler) SetMode(c *gin.Context) {
	var req struct {
		Mode string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	mode, err := menu.ParseMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}

	e, ok := h.current(c)
	if !ok {
		return
	}

	if err := e.SetMode(mode); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// PUT /api/canteens/:canteen_id/menu-editor/name
func (h *Handler) SetName(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"max=120"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	e, ok := h.current(c)
	if !ok {
		return
	}

	if err := e.SetName(req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// PUT /api/canteens/:canteen_id/menu-editor/weekdays/:day
func (h *Handler) ToggleWeekday(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	var req struct {
		Included *bool `json:"included" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "included is required"})
		return
	}

	e, ok := h.current(c)
	if !ok {
		return
	}

	if err := e.ToggleWeekday(day, *req.Included); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// DELETE /api/canteens/:canteen_id/menu-editor/weekdays/:day
func (h *Handler) RemoveDay(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	e, ok := h.current(c)
	if !ok {
		return
	}

	if err := e.RemoveDay(day); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// PUT /api/canteens/:canteen_id/menu-editor/items/:item_id
func (h *Handler) ToggleItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Included *bool  `json:"included" binding:"required"`
		Day      string `json:"day"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "included is required"})
		return
	}

	var day *menu.Weekday
	if req.Day != "" {
		d, err := menu.ParseWeekday(req.Day)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		day = &d
	}

	e, ok := h.current(c)
	if !ok {
		return
	}

	if err := e.ToggleItem(itemID, *req.Included, day); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e.State())
}

// POST /api/canteens/:canteen_id/menu-editor/submit
func (h *Handler) Submit(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx := remote.WithToken(c.Request.Context(), c.GetString("authToken"))

	res, err := h.service.Submit(ctx, p, c.GetInt("canteenID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "menu updated",
		"result":  res,
	})
}
