package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// Rotation configures one rolling log file.
type Rotation struct {
	File       string `toml:"file"`
	MaxSize    int    `toml:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
}

// LogFile implements a file based logger with one file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access Rotation `toml:"access"`
	Error  Rotation `toml:"error"`
	Info   Rotation `toml:"info"`
	Trace  Rotation `toml:"trace"`
	Warn   Rotation `toml:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.
	LogEnv   string

	// EnableAccessLogToConsole writes the http access log to stdout as well.
	// Console.Enabled must be set too.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	// SlowQueryThreshold marks gorm queries slower than this as warnings. Zero disables it.
	SlowQueryThreshold Duration

	AppName     string
	ServiceName string

	Console Console

	File LogFile `toml:"file"`
}
