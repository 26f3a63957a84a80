package project

import (
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/db/models"
)

// SampleProjects returns the development seed set.
func SampleProjects() []models.Project {
	return []models.Project{
		{
			Title:        "Portfolio Website",
			Description:  "A personal portfolio website built with Go and Fiber, showcasing projects and offering a contact form.",
			Technologies: "Go, Fiber, SQLite, HTML, CSS",
			GithubLink:   "https://github.com/yourusername/portfolio",
			LiveLink:     "https://yourportfolio.example.com",
			ImageURL:     "/static/img/portfolio.svg",
		},
		{
			Title:        "Task Manager",
			Description:  "A task management application with user authentication and real-time updates.",
			Technologies: "Go, PostgreSQL, JavaScript, WebSockets",
			GithubLink:   "https://github.com/yourusername/task-manager",
			ImageURL:     "/static/img/tasks.svg",
		},
		{
			Title:        "Weather Dashboard",
			Description:  "A dashboard that shows current weather and forecasts for saved locations using a public weather API.",
			Technologies: "JavaScript, REST API, Chart.js",
			GithubLink:   "https://github.com/yourusername/weather-dashboard",
			LiveLink:     "https://weather.example.com",
			ImageURL:     "/static/img/weather.svg",
		},
	}
}

// SeedIfEmpty inserts samples when no project is stored yet and
// returns the number of inserted rows. Running it again is a no-op.
func SeedIfEmpty(db *gorm.DB, samples []models.Project) (int, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	for i := range samples {
		if err := check(&samples[i]); err != nil {
			return 0, err
		}
	}

	inserted := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		count, err := Count(tx)
		if err != nil {
			return err
		}

		if count > 0 || len(samples) == 0 {
			return nil
		}

		if err = tx.Create(&samples).Error; err != nil {
			return err
		}

		inserted = len(samples)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
