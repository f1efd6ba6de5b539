// Package daemon wires storage, the throwback widget and the web service together.
package daemon

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/db/controller/post"
	tbrepo "github.com/throwback-posts/throwback-posts/internal/db/controller/throwback"
	"github.com/throwback-posts/throwback-posts/internal/db/dsn"
	"github.com/throwback-posts/throwback-posts/internal/db/models"
	"github.com/throwback-posts/throwback-posts/internal/hooks"
	gormadapter "github.com/throwback-posts/throwback-posts/internal/logger/adapter/gorm"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
	"github.com/throwback-posts/throwback-posts/internal/web"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/web/session"
	"github.com/throwback-posts/throwback-posts/internal/widget"
)

const sessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(":" + strconv.Itoa(d.cfg.Webserver.Port))
	}()

	go d.webService.WaitShutdown()

	return <-errCh
}

// OpenDB connects to the configured database and migrates the schema.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormadapter.New(cfg.Log.SlowQueryThreshold.Duration).LogMode(gormadapter.ParseLevel(cfg.DB.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Category{},
		&models.Post{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Wire builds the content store, the throwback service and the widget plugin
// on top of db and registers the widget in a fresh hook registry.
func Wire(cfg *config.Config, db *gorm.DB) (*handler.Dependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store := post.NewStore(db, cfg.Site.URL)
	repo := tbrepo.NewRepository(db)
	svc := tb.NewService(repo, store, tb.WithLocation(loc))

	renderer, err := widget.New(widget.Options{
		DefaultIconURL: web.WidgetStaticPath + widget.DefaultIconPath,
		Location:       loc,
	})
	if err != nil {
		return nil, err
	}

	plugin := widget.NewPlugin(svc, renderer, web.WidgetStaticPath)
	registry := hooks.NewRegistry()
	plugin.Register(registry)

	return &handler.Dependencies{
		Cfg:       cfg,
		DB:        db,
		Posts:     store,
		Settings:  repo,
		Throwback: svc,
		Widget:    plugin,
		Hooks:     registry,
	}, nil
}

// sessionStorage keeps sessions next to the content. SQLite sessions live in memory.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.PostgresURI(cfg),
			Table:         sessionTable,
		})
	default:
		return nil
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	session.Init(sessionStorage(cfg))

	deps, err := Wire(cfg, db)
	if err != nil {
		return nil, err
	}

	webService, err := web.New(deps)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("engine", cfg.DB.GormEngine).
		Int("port", cfg.Webserver.Port).
		Strs("head_hooks", deps.Hooks.Names(hooks.Head)).
		Strs("footer_hooks", deps.Hooks.Names(hooks.Footer)).
		Msg("daemon ready")

	return &Daemon{cfg: cfg, webService: webService}, nil
}
