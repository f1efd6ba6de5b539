// Package web assembles the fiber application: templates, static files and handlers.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	fiberlogger "github.com/throwback-posts/throwback-posts/internal/logger/adapter/fiber"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/web/handler/admin/settings/throwbackposts"
	"github.com/throwback-posts/throwback-posts/internal/web/handler/login"
	"github.com/throwback-posts/throwback-posts/internal/web/handler/logout"
	"github.com/throwback-posts/throwback-posts/internal/web/handler/public"
	authmiddleware "github.com/throwback-posts/throwback-posts/internal/web/middleware/auth"
	"github.com/throwback-posts/throwback-posts/internal/widget"
)

const (
	// CheckAlivePath answers load balancer probes.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// StaticPath serves the site assets.
	StaticPath = "/static"

	// WidgetStaticPath serves the widget assets.
	WidgetStaticPath = StaticPath + "/throwback-posts"

	// AdminPath prefixes every page that needs a login.
	AdminPath = "/admin"
)

// ErrNilDependencies is returned by New when config or db is missing.
var ErrNilDependencies = errors.New("config and db are required")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	deps         *handler.Dependencies
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fiber listen: %w", err)
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the service gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown reports 503 on the checkalive route for the configured grace
// period, then stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.deps.Cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.deps.Cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive returns 200 while the service accepts traffic and 503 during shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates the web service and registers every route.
func New(deps *handler.Dependencies) (*Service, error) {
	if !deps.Valid() {
		return nil, ErrNilDependencies
	}

	cfg := deps.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg.DevMode),
		},
	)

	service := &Service{
		App:          app,
		deps:         deps,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// the widget assets are mounted before the site assets so their prefix wins
	app.Use(WidgetStaticPath, filesystem.New(filesystem.Config{
		Root:   http.FS(widget.Static()),
		Browse: cfg.Webserver.BrowseStatic,
	}))
	app.Use(StaticPath, filesystem.New(filesystem.Config{
		Root:   http.FS(siteFS(embeddedStatic, "static")),
		Browse: cfg.Webserver.BrowseStatic,
	}))

	app.Use(AdminPath, authmiddleware.Middleware)

	initializers := []struct {
		name string
		svc  handler.Service
	}{
		{"login", &login.Handler},
		{"logout", &logout.Handler},
		{"public", &public.Handler},
		{"throwback settings", &throwbackposts.Handler},
	}

	for _, i := range initializers {
		if err := i.svc.Init(app, deps); err != nil {
			return nil, fmt.Errorf("init %s handler: %w", i.name, err)
		}
	}

	app.Get(AdminPath, func(c *fiber.Ctx) error {
		return c.Redirect(handler.AdminHomePath)
	})

	return service, nil
}

func newTemplateEngine(devMode bool) *html.Engine {
	httpFS := http.FS(siteFS(embeddedTemplates, "templates"))
	engine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if devMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("first", func(values []string) string {
		if len(values) == 0 {
			return ""
		}

		return values[0]
	})
	engine.AddFunc("contains", func(values []string, v string) bool {
		for _, value := range values {
			if value == v {
				return true
			}
		}

		return false
	})
	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("2006/01/02")
	})

	return engine
}
