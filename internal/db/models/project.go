// Package models contains database model definitions.
package models

import (
	"strings"
)

// Project is a portfolio entry shown on the home page.
type Project struct {
	// ID is the system assigned key, ascending in insertion order.
	ID uint64 `gorm:"primaryKey"`
	// Title is the short project name.
	Title string `gorm:"size:100;not null"`
	// Description is free text.
	Description string `gorm:"type:text;not null"`
	// Technologies is a comma separated list kept verbatim.
	Technologies string `gorm:"size:200"`
	// GithubLink, LiveLink and ImageURL are opaque, unchecked URLs.
	GithubLink string `gorm:"size:200"`
	LiveLink   string `gorm:"size:200"`
	ImageURL   string `gorm:"size:200"`
}

// TechList splits Technologies for display, dropping empty items.
func (p Project) TechList() []string {
	var out []string

	for _, t := range strings.Split(p.Technologies, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}

	return out
}
