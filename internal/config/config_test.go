package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigDir(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(root, "etc")
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigDir(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.NotEmpty(t, cfg.DB.File)
	assert.Equal(t, 12*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Equal(t, 200*time.Millisecond, cfg.Log.SlowQueryThreshold.Duration)
	assert.Equal(t, "access.log", cfg.Log.File.Access.File)
	assert.Equal(t, "throwback-posts", cfg.Log.AppName)
	assert.True(t, cfg.Log.Console.Enabled)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestReadConfig_JSONOverride(t *testing.T) {
	t.Setenv(EnvJSON, `{"Webserver":{"Port":9090},"Site":{"TimeZone":"Europe/Lisbon"},"DB":{"GormEngine":"postgres"}}`)

	cfg, err := ReadConfig(projectConfigDir(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "Europe/Lisbon", cfg.Site.TimeZone)
	assert.Equal(t, EnginePostgres, cfg.DB.GormEngine)
	// values not in the override survive
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfig_BadJSON(t *testing.T) {
	t.Setenv(EnvJSON, `{"Webserver":`)

	_, err := ReadConfig(projectConfigDir(t))
	require.Error(t, err)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			DB:        DB{GormEngine: EngineMySQL},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Webserver.Port = 0 }, wantErr: ErrWebServerPortCanNotBeZero},
		{name: "empty url", mutate: func(c *Config) { c.Webserver.URL = "" }, wantErr: ErrEmptyURL},
		{name: "unknown engine", mutate: func(c *Config) { c.DB.GormEngine = "oracle" }, wantErr: ErrUnknownGormEngine},
		{name: "sqlite without file", mutate: func(c *Config) { c.DB.GormEngine = EngineSQLite }, wantErr: ErrEmptySQLiteFile},
		{name: "bad time zone", mutate: func(c *Config) { c.Site.TimeZone = "Mars/Olympus" }, wantErr: ErrInvalidTimeZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := validate(&c)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	c := Config{
		Webserver: Webserver{Port: 8080, URL: "http://example.com"},
		DB:        DB{GormEngine: EngineSQLite, File: "x.db"},
	}

	require.NoError(t, validate(&c))

	assert.Equal(t, defaultShutDownTime, c.Webserver.ShutDownTime)
	assert.Equal(t, defaultSessionTTL, c.Webserver.Session.ExpiryTime)
	assert.Equal(t, "http://example.com", c.Site.URL)
	assert.Equal(t, defaultRecentPosts, c.Site.RecentPosts)
}

func TestDumpConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigDir(t))
	require.NoError(t, err)

	out, err := DumpConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "GormEngine")

	out, err = DumpConfigJSON(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"GormEngine": "sqlite"`)
}

func TestMain(m *testing.M) {
	_ = os.Unsetenv(EnvJSON)
	os.Exit(m.Run())
}
