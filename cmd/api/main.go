package main

import (
	"context"

	"chefpay/internal/audit"
	"chefpay/internal/catalog"
	"chefpay/internal/config"
	"chefpay/internal/db"
	"chefpay/internal/editor"
	"chefpay/internal/export"
	"chefpay/internal/logging"
	"chefpay/internal/menu"
	"chefpay/internal/remote"
	"chefpay/internal/router"
	"chefpay/internal/storage"

	"github.com/rs/zerolog/log"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	logging.Setup(cfg.AppEnv, cfg.LogLevel)
	ctx := context.Background()

	// ───────────────────────── AUDIT STORE ─────────────────────────
	var auditRepo audit.Repository
	if cfg.DatabaseURL != "" {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}

		pool, err := db.Connect(ctx, cfg.DatabaseURL, db.PoolOptions{
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("postgres init failed")
		}
		defer pool.Close()

		auditRepo = audit.NewPostgresRepository(pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set, submission history kept in memory")
		auditRepo = audit.NewInMemoryRepository()
	}

	// ───────────────────────── REMOTE API ─────────────────────────
	client := remote.NewClient(cfg.RemoteAPIBaseURL, cfg.RemoteAPIToken, cfg.RemoteAPITimeout)

	catalogService := catalog.NewService(catalog.NewRemoteRepository(client))
	syncer := menu.NewSyncer(menu.NewRemoteRepository(client))

	// ───────────────────────── SERVICES ─────────────────────────
	auditService := audit.NewService(auditRepo)
	editorService := editor.NewService(editor.NewStore(), syncer, auditService)

	// ───────────────────────── STORAGE ─────────────────────────
	var publisher *export.Publisher
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			log.Fatal().Err(err).Msg("R2 init failed")
		}
		publisher = export.NewPublisher(r2Client)
	} else {
		log.Warn().Msg("R2 not configured, export publishing disabled")
	}

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		JWTSecret:      []byte(cfg.JWTSecret),
		AllowedOrigins: cfg.AllowedOrigins,
		Catalog:        catalog.NewHandler(catalogService),
		Editor:         editor.NewHandler(editorService),
		Export:         export.NewHandler(editorService, catalogService, publisher),
		Audit:          audit.NewHandler(auditService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Info().
		Str("port", cfg.Port).
		Str("remote_api", cfg.RemoteAPIBaseURL).
		Msg("API running")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
