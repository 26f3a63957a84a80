package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if db.gormengine is none of sqlite, mysql or postgres.
	ErrUnknownGormEngine = errors.New("config db.gormengine must be sqlite, mysql or postgres")

	// ErrEmptyDBPath error if the sqlite engine is selected without a file path.
	ErrEmptyDBPath = errors.New("config db.path can not be empty for sqlite")

	// ErrEmptyMailServer error if mail.server is empty.
	ErrEmptyMailServer = errors.New("config mail.server can not be empty")
)
