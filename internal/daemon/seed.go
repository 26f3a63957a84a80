package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/config"
	"github.com/portfolio-web/portfolio/internal/db"
	"github.com/portfolio-web/portfolio/internal/db/controller/project"
)

// Seed opens the configured store and fills it with the sample
// projects when it is empty. It returns the number of inserted projects.
func Seed(cfg *config.Config) (int, error) {
	if cfg == nil {
		return 0, ErrNilConfig
	}

	store, err := db.Open(cfg)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	defer closeStore(store)

	return seed(store)
}

func seed(store *gorm.DB) (int, error) {
	inserted, err := project.SeedIfEmpty(store, project.SampleProjects())
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if inserted > 0 {
		log.Info().Int("projects", inserted).Msg("seeded sample projects")
	} else {
		log.Debug().Msg("project store not empty, seeding skipped")
	}

	return inserted, nil
}
