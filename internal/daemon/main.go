// Package daemon assembles the store, the mail relay and the web service.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/config"
	"github.com/portfolio-web/portfolio/internal/db"
	"github.com/portfolio-web/portfolio/internal/mailer"
	"github.com/portfolio-web/portfolio/internal/web"
)

// ErrNilConfig is returned when New is called without configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// New opens the store, seeds it in dev mode and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return newWithSender(cfg, mailer.NewSMTP(&cfg.Mail))
}

func newWithSender(cfg *config.Config, sender mailer.Sender) (*Daemon, error) {
	warnings(cfg)

	store, err := db.Open(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if cfg.DevMode {
		if _, err = seed(store); err != nil {
			closeStore(store)

			return nil, err
		}
	}

	return &Daemon{
		cfg:        cfg,
		db:         store,
		webService: web.New(cfg, store, sender),
	}, nil
}

// Addr is the listen address derived from the configured port.
func (d *Daemon) Addr() string {
	return fmt.Sprintf(":%d", d.cfg.Webserver.Port)
}

// Start serves until the listener fails.
func (d *Daemon) Start() error {
	defer closeStore(d.db)

	return d.webService.Start(d.Addr()) //nolint:wrapcheck
}

// warnings logs settings that work but are probably not intended.
func warnings(cfg *config.Config) {
	if cfg.Mail.Mailbox() == "" {
		log.Warn().Msg("neither MAIL_RECIPIENT nor MAIL_USERNAME is set, contact submissions will fail")
	}

	if !cfg.DevMode && cfg.Webserver.SecretKey == config.DefaultSecretKey {
		log.Warn().Msg("SECRET_KEY is the built-in default, set it outside dev mode")
	}
}

func closeStore(store *gorm.DB) {
	sqlDB, err := store.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get sql db")

		return
	}

	if err = sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close project store")
	}
}
