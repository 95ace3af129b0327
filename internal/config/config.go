package config

import (
	"fmt"
	"strings"
	"time"

	pkgconfig "github.com/JivitSolutions/JivIT-Solutions/pkg/config"
	"github.com/JivitSolutions/JivIT-Solutions/pkg/logger"
)

// ServiceName is the config file name and environment prefix (CMS_*).
const ServiceName = "cms"

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       logger.Config   `mapstructure:"log"`
	Session   SessionConfig   `mapstructure:"session"`
	Mail      MailConfig      `mapstructure:"mail"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

// ConfigError reports required settings that are missing.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	keys := make([]string, len(e.Missing))
	for i, key := range e.Missing {
		keys[i] = fmt.Sprintf("%s (env %s)", key, EnvName(key))
	}
	return "missing required configuration: " + strings.Join(keys, ", ")
}

// EnvName returns the environment variable that sets key.
func EnvName(key string) string {
	return strings.ToUpper(ServiceName + "_" + strings.ReplaceAll(key, ".", "_"))
}

// Defaults registers every key so it can be supplied from the environment alone.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":        "jivit-cms",
		"service.environment": "development",
		"service.version":     "dev",
		"service.client_url":  "http://localhost:5173",

		"supabase.url":        "",
		"supabase.api_key":    "",
		"supabase.jwt_secret": "",

		"database.driver":             DriverPostgres,
		"database.host":               "",
		"database.port":               5432,
		"database.name":               "",
		"database.user":               "",
		"database.password":           "",
		"database.ssl_mode":           "require",
		"database.path":               "cms.db",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  time.Hour,
		"database.conn_max_idle_time": 10 * time.Minute,

		"redis.enabled":    false,
		"redis.host":       "localhost",
		"redis.port":       6379,
		"redis.password":   "",
		"redis.db":         0,
		"redis.access_ttl": 5 * time.Minute,

		"server.http.host": "0.0.0.0",
		"server.http.port": 8080,
		"server.grpc.host": "0.0.0.0",
		"server.grpc.port": 9090,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.file_path":   "",
		"log.development": false,

		"session.secret":      "",
		"session.cookie_name": "jivit_session",
		"session.max_age":     86400 * 7,
		"session.secure":      true,

		"mail.enabled":  false,
		"mail.host":     "",
		"mail.port":     587,
		"mail.username": "",
		"mail.password": "",
		"mail.from":     "no-reply@jivitsolutions.com",

		"dashboard.recent_activity": 8,
	}
}

// LoadConfig reads configuration and fails fast when required settings are missing.
func LoadConfig() (*Config, error) {
	src, err := pkgconfig.Load(ServiceName, Defaults())
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := src.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns a *ConfigError listing every missing required key.
func (c *Config) Validate() error {
	var missing []string
	require := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	require("supabase.url", c.Supabase.URL)
	require("supabase.api_key", c.Supabase.APIKey)
	require("supabase.jwt_secret", c.Supabase.JWTSecret)

	switch c.Database.Driver {
	case DriverSQLite:
		require("database.path", c.Database.Path)
	default:
		require("database.host", c.Database.Host)
		require("database.name", c.Database.Name)
		require("database.user", c.Database.User)
	}

	if c.IsProduction() {
		require("session.secret", c.Session.Secret)
	}
	if c.Mail.Enabled {
		require("mail.host", c.Mail.Host)
	}

	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// SessionSecret is the cookie signing key. Outside production it falls
// back to the Supabase JWT secret when session.secret is unset; the second
// result reports whether that happened.
func (c *Config) SessionSecret() (string, bool) {
	if c.Session.Secret != "" {
		return c.Session.Secret, false
	}
	return c.Supabase.JWTSecret, true
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Service.Environment == "production"
}
