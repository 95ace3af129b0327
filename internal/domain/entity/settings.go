package entity

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Setting keys
const (
	SettingSiteName           = "site_name"
	SettingContactEmail       = "contact_email"
	SettingMaintenanceMode    = "maintenance_mode"
	SettingEnableApplications = "enable_applications"
	SettingNotificationEmail  = "notification_email"
	SettingSocialLinks        = "social_links"
	SettingServiceCategories  = "service_categories"
	SettingProgramCategories  = "program_categories"
)

// Settings is the site-wide key/value mapping.
type Settings map[string]interface{}

// SiteSettings is the typed view of Settings.
type SiteSettings struct {
	SiteName           string               `mapstructure:"site_name"`
	ContactEmail       string               `mapstructure:"contact_email"`
	MaintenanceMode    bool                 `mapstructure:"maintenance_mode"`
	EnableApplications bool                 `mapstructure:"enable_applications"`
	NotificationEmail  string               `mapstructure:"notification_email"`
	SocialLinks        map[string]string    `mapstructure:"social_links"`
	ServiceCategories  []CategoryDescriptor `mapstructure:"service_categories"`
	ProgramCategories  []CategoryDescriptor `mapstructure:"program_categories"`
}

// DefaultSettings returns the values used for keys that were never stored.
func DefaultSettings() Settings {
	return Settings{
		SettingSiteName:           "JivIT Solutions",
		SettingContactEmail:       "hello@jivitsolutions.com",
		SettingMaintenanceMode:    false,
		SettingEnableApplications: true,
		SettingNotificationEmail:  "admin@jivitsolutions.com",
		SettingSocialLinks: map[string]string{
			"linkedin":  "",
			"twitter":   "",
			"instagram": "",
		},
		SettingServiceCategories: DefaultServiceCategories(),
		SettingProgramCategories: DefaultProgramCategories(),
	}
}

// IsKnownSetting reports whether key is one of the site settings.
func IsKnownSetting(key string) bool {
	_, ok := DefaultSettings()[key]
	return ok
}

// Overlay returns a copy of s with every key of overrides applied on top.
func (s Settings) Overlay(overrides map[string]interface{}) Settings {
	out := make(Settings, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Decode converts s into SiteSettings.
func (s Settings) Decode() (SiteSettings, error) {
	var site SiteSettings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &site,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return site, err
	}
	if err := decoder.Decode(map[string]interface{}(s)); err != nil {
		return site, fmt.Errorf("failed to decode settings: %w", err)
	}
	return site, nil
}
