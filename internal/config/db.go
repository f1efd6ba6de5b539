package config

// Supported gorm engines.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	GormEngine string // mysql, postgres or sqlite
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	Extras     string // driver specific dsn parameters
	File       string // sqlite database file
	LogLevel   string // gorm log level: silent, error, warn or info
}
