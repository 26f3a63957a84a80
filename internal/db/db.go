// Package db opens the project store and keeps its schema current.
package db

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/portfolio-web/portfolio/internal/config"
	"github.com/portfolio-web/portfolio/internal/db/dsn"
	"github.com/portfolio-web/portfolio/internal/db/models"
	"github.com/portfolio-web/portfolio/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 200 * time.Millisecond

// ErrNilConfig is returned when Open is called without configuration.
var ErrNilConfig = errors.New("db config is nil")

// Open connects to the configured store and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	var (
		dbCfg     = &cfg.DB
		dialector gorm.Dialector
		fresh     bool
	)

	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(dbCfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(dbCfg))
	case config.EngineSQLite:
		var err error

		if fresh, err = prepareFile(dbCfg.Path); err != nil {
			return nil, err
		}

		dialector = sqlite.Open(dsn.Create(dbCfg))
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, dbCfg.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg.DevMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	if fresh {
		log.Info().Str("path", dbCfg.Path).Msg("created project store")
	}

	return db, nil
}

// newGormLogger routes gorm messages to zerolog. Dev mode adds statement traces.
func newGormLogger(devMode bool) gormlogger.Interface {
	var (
		level   = gormlogger.Warn
		zerolvl = zerolog.WarnLevel
	)

	if devMode {
		level = gormlogger.Info
		zerolvl = zerolog.InfoLevel
	}

	return gormlogger.New(
		stdlogger.NewWithLevel(zerolvl, "gorm"),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}

// prepareFile reports whether the sqlite file is new and creates its directory.
func prepareFile(path string) (bool, error) {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, errors.Wrapf(err, "failed to stat %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return false, errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	return true, nil
}
