// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/portfolio-web/portfolio/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
// For sqlite it is the database file path.
func Create(dbCfg *config.DB) string {
	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.Name,
			dbCfg.Extras,
		)
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Name,
		)

		if dbCfg.Extras != "" {
			out += " " + strings.TrimSpace(dbCfg.Extras)
		}

		return out
	default:
		return dbCfg.Path
	}
}
