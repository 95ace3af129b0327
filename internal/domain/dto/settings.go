package dto

import "encoding/json"

// UpdateSettingRequest upserts a single setting. Value is any JSON value.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// UpdateSettingsRequest upserts several settings at once.
type UpdateSettingsRequest map[string]json.RawMessage
