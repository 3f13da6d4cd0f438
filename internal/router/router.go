package router

import (
	"net/http"
	"time"

	"chefpay/internal/audit"
	"chefpay/internal/catalog"
	"chefpay/internal/core"
	"chefpay/internal/editor"
	"chefpay/internal/export"
	"chefpay/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	JWTSecret      []byte
	AllowedOrigins []string

	Catalog *catalog.Handler
	Editor  *editor.Handler
	Export  *export.Handler
	Audit   *audit.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.JWTSecret))

	// ───────────────────────── CANTEEN ROUTES ─────────────────────────
	canteens := api.Group("/canteens/:canteen_id")
	canteens.Use(middleware.RequireCanteenAccess())
	{
		canteens.GET("/catalog", d.Catalog.Browse)

		editorGroup := canteens.Group("/menu-editor")
		d.Editor.Register(editorGroup)

		editorGroup.GET("/export", d.Export.Download)
		editorGroup.POST(
			"/export/publish",
			middleware.RequireRole(core.RoleAdmin),
			d.Export.Publish,
		)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole(core.RoleAdmin))
	{
		admin.GET(
			"/canteens/:canteen_id/menu-submissions",
			middleware.RequireCanteenAccess(),
			d.Audit.List,
		)
	}

	return r
}
