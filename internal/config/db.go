package config

const (
	// EngineSQLite stores projects in a local database file.
	EngineSQLite = "sqlite"
	// EngineMySQL stores projects in a MySQL server.
	EngineMySQL = "mysql"
	// EnginePostgres stores projects in a PostgreSQL server.
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string
	Path       string // sqlite only
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
}
