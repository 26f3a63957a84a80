package web

import (
	"embed"
	"io/fs"
	"net/http"
)

const (
	templatesDir      = "templates"
	templateExtension = ".gohtml"

	// devTemplatesDir is read from disk in dev mode, relative to the repository root.
	devTemplatesDir = "./internal/web/" + templatesDir
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateFS returns the embedded templates rooted at the templates directory.
func templateFS() http.FileSystem {
	sub, err := fs.Sub(embeddedTemplates, templatesDir)
	if err != nil {
		panic(err) // static directory name, only fails on a broken build
	}

	return http.FS(sub)
}
