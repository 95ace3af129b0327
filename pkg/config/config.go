// Package config loads layered configuration from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config gives read access to loaded settings.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	GetAll() map[string]interface{}
	IsSet(key string) bool
	// Unmarshal decodes every setting into out using mapstructure tags.
	Unmarshal(out interface{}) error
	// ConfigFile is the file that was read, or "" for env-only configuration.
	ConfigFile() string
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool { return c.v.GetBool(key) }
func (c *viperConfig) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }
func (c *viperConfig) GetStringSlice(key string) []string { return c.v.GetStringSlice(key) }
func (c *viperConfig) GetAll() map[string]interface{} { return c.v.AllSettings() }
func (c *viperConfig) IsSet(key string) bool { return c.v.IsSet(key) }
func (c *viperConfig) Unmarshal(out interface{}) error { return c.v.Unmarshal(out) }
func (c *viperConfig) ConfigFile() string { return c.v.ConfigFileUsed() }
func (c *viperConfig) GetStringMap(key string) map[string]interface{} { return c.v.GetStringMap(key) }

const configDir = "configs"

// Load reads configs/<env>/<service>.yaml (or CONFIG_PATH) and overlays
// environment variables prefixed with the upper-cased service name.
// Keys in defaults are registered so they can be set from the environment
// alone; a missing config file is not an error.
func Load(serviceName string, defaults map[string]interface{}) (Config, error) {
	v := viper.New()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	configPath := os.Getenv("CONFIG_PATH")
	switch {
	case configPath != "" && filepath.Ext(configPath) != "":
		v.SetConfigFile(configPath)
	case configPath != "":
		v.SetConfigName(serviceName)
		v.AddConfigPath(configPath)
	default:
		v.SetConfigName(serviceName)
		v.AddConfigPath(filepath.Join(configDir, env))
		v.AddConfigPath(filepath.Join(configDir, "example"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
