// Package config loads runtime configuration for the diary CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the sqlite database holding the diary
//	-l string   log level: debug, info, warn, error
//	-q int      storage quota in bytes (keys + values)
//	-m int      attachment size limit in bytes (files this size or larger are rejected)
//	-z string   IANA time zone used to format timestamps
//	-r          open the store read-only (every write fails)
//
// # JSON schema
//
//	{
//	  "db_path": "diary.db",
//	  "log_level": "warn",
//	  "quota_bytes": 5242880,
//	  "max_attachment_bytes": 1048576,
//	  "time_zone": "Asia/Tokyo",
//	  "date_layout": "2006/1/2 15:04:05",
//	  "placeholder_image": "./images/no-image.png",
//	  "read_only": false
//	}
//
// Absent or zero JSON values leave the earlier value in place.
//
// The resulting Config is checked with go-playground/validator; see
// (*Config).Validate.
package config
