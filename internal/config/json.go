package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/webdiary/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DBPath             string `json:"db_path"`
	LogLevel           string `json:"log_level"`
	QuotaBytes         int64  `json:"quota_bytes"`
	MaxAttachmentBytes int64  `json:"max_attachment_bytes"`
	TimeZone           string `json:"time_zone"`
	DateLayout         string `json:"date_layout"`
	PlaceholderImage   string `json:"placeholder_image"`
	ReadOnly           *bool  `json:"read_only"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.QuotaBytes != 0 {
		cfg.QuotaBytes = jc.QuotaBytes
	}
	if jc.MaxAttachmentBytes != 0 {
		cfg.MaxAttachmentBytes = jc.MaxAttachmentBytes
	}
	if jc.TimeZone != "" {
		cfg.TimeZone = jc.TimeZone
	}
	if jc.DateLayout != "" {
		cfg.DateLayout = jc.DateLayout
	}
	if jc.PlaceholderImage != "" {
		cfg.PlaceholderImage = jc.PlaceholderImage
	}
	if jc.ReadOnly != nil {
		cfg.ReadOnly = *jc.ReadOnly
	}
}
