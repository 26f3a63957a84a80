// Package handler holds what the page handlers share.
package handler

import (
	"errors"
)

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the site.
	RootPath = "/"

	// NotFoundTemplate is rendered for unknown routes.
	NotFoundTemplate = "errors/404"

	// ServerErrorTemplate is rendered for unhandled faults.
	ServerErrorTemplate = "errors/500"

	// LocalDisplayName is the fiber local holding the site owner name for every view.
	LocalDisplayName = "DisplayName"

	// LocalSiteTitle is the fiber local holding the html title suffix for every view.
	LocalSiteTitle = "SiteTitle"
)

// ErrNilApp is returned by Init when no fiber app is given.
var ErrNilApp = errors.New("fiber app is nil")
