// Package web wires the fiber app: templates, middleware and page handlers.
package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/config"
	contactsvc "github.com/portfolio-web/portfolio/internal/contact"
	fiberlogger "github.com/portfolio-web/portfolio/internal/logger/adapter/fiber"
	"github.com/portfolio-web/portfolio/internal/mailer"
	"github.com/portfolio-web/portfolio/internal/web/handler"
	"github.com/portfolio-web/portfolio/internal/web/handler/about"
	"github.com/portfolio-web/portfolio/internal/web/handler/contact"
	"github.com/portfolio-web/portfolio/internal/web/handler/home"
)

const (
	// StaticPath is where the embedded assets are served.
	StaticPath = "/static"

	// MetricsPath exposes prometheus metrics when enabled.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App *fiber.App
	cfg *config.Config
}

// Start listens on addr until the server fails.
func (s *Service) Start(addr string) error {
	log.Info().Str("addr", addr).Bool("dev", s.cfg.DevMode).Msg("starting http server")

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// New creates a new web service. db and sender are used by the page handlers.
func New(cfg *config.Config, db *gorm.DB, sender mailer.Sender) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if sender == nil {
		panic("mail sender cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:    8192,
			AppName:           cfg.Site.Title,
			CaseSensitive:     true,
			Prefork:           false,
			Immutable:         true,
			Views:             newTemplateEngine(cfg),
			PassLocalsToViews: true,
			ErrorHandler:      errorHandler,
		},
	)

	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// values every page renders
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(handler.LocalDisplayName, cfg.Site.DisplayName)
		c.Locals(handler.LocalSiteTitle, cfg.Site.Title)

		return c.Next()
	})

	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	if cfg.Webserver.Metrics {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	handlers := []handler.Service{
		home.New(db),
		about.New(),
		contact.New(contactsvc.NewService(sender, cfg.Mail.Mailbox())),
	}

	for _, h := range handlers {
		if err := h.Init(app); err != nil {
			panic(err)
		}
	}

	app.Use(notFound)

	return &Service{
		App: app,
		cfg: cfg,
	}
}

// newTemplateEngine returns the embedded template engine, or the
// reloading on-disk engine in dev mode.
func newTemplateEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(templateFS(), templateExtension)

	if cfg.DevMode {
		engine = html.New(devTemplatesDir, templateExtension)
		engine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("year", func() int {
		return time.Now().Year()
	})

	return engine
}
