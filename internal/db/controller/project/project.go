// Package project provides the read and seed operations of the project store.
package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrProjectNil is returned when Create is called without a project.
	ErrProjectNil = errors.New("project is nil")
	// ErrTitleEmpty is returned when a project has no title.
	ErrTitleEmpty = errors.New("project title cannot be empty")
	// ErrDescriptionEmpty is returned when a project has no description.
	ErrDescriptionEmpty = errors.New("project description cannot be empty")
)

// GetAll retrieves all projects in insertion order.
func GetAll(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	projects := make([]models.Project, 0)

	result := db.Order("id asc").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// Count returns the number of stored projects.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64

	result := db.Model(&models.Project{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Create inserts p and sets its ID.
func Create(db *gorm.DB, p *models.Project) error {
	if db == nil {
		return ErrDBNil
	}

	if err := check(p); err != nil {
		return err
	}

	return db.Create(p).Error
}

func check(p *models.Project) error {
	switch {
	case p == nil:
		return ErrProjectNil
	case p.Title == "":
		return ErrTitleEmpty
	case p.Description == "":
		return ErrDescriptionEmpty
	}

	return nil
}
