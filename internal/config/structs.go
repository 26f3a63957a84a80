package config

import (
	"github.com/portfolio-web/portfolio/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Mail      Mail
	Site      Site
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Metrics        bool   // expose prometheus metrics on /metrics
	Port           int    // listening port for the webserver
	SecretKey      string // application secret, must be overridden outside dev mode
}

// Site holds the values threaded into every rendered page.
type Site struct {
	DisplayName string // owner name shown in header, about page and footer
	Title       string // html title suffix
}

// Mail holds the outbound SMTP relay settings.
type Mail struct {
	Server   string
	Port     int
	UseTLS   bool // STARTTLS is mandatory when true
	Username string
	Password string

	// Recipient is the mailbox contact submissions are delivered to.
	// Empty means Username.
	Recipient string
}

// Mailbox returns the address contact submissions are sent to.
func (m *Mail) Mailbox() string {
	if m.Recipient != "" {
		return m.Recipient
	}

	return m.Username
}
