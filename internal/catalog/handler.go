package catalog

import (
	"net/http"

	"chefpay/internal/logging"
	"chefpay/internal/remote"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, logger: logging.Component("catalog")}
}

// GET /api/canteens/:canteen_id/catalog?search=&category=
func (h *Handler) Browse(c *gin.Context) {
	canteenID := c.GetInt("canteenID")
	ctx := remote.WithToken(c.Request.Context(), c.GetString("authToken"))

	page, err := h.service.Browse(ctx, canteenID, Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		h.logger.Error().Err(err).Int("canteen_id", canteenID).Msg("catalog fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch menu items"})
		return
	}

	c.JSON(http.StatusOK, page)
}
