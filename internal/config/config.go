// Package config resolves shelfmap's runtime settings from Viper and the
// process environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/shelfmap/shelfmap/pkg/constants"
)

// Viper keys and their environment forms (SHELFMAP_API_URL, SHELFMAP_STATE_DIR).
const (
	KeyAPIURL   = "api_url"
	KeyStateDir = "state_dir"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// APIURL returns the remote catalog service base URL. Resolution order:
// flag/config via Viper, then SHELFMAP_API_URL, then the fixed default.
func APIURL() string {
	if v := GetString(KeyAPIURL); v != "" {
		return v
	}
	if v := os.Getenv("SHELFMAP_API_URL"); v != "" {
		return v
	}
	return constants.DefaultAPIURL
}

// StateDir returns the directory holding the persisted snapshots.
// Defaults to ~/.shelfmap, or a relative directory when the home
// directory cannot be determined.
func StateDir() string {
	if v := GetString(KeyStateDir); v != "" {
		return v
	}
	if v := os.Getenv("SHELFMAP_STATE_DIR"); v != "" {
		return v
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return constants.StateDirName
	}
	return filepath.Join(home, constants.StateDirName)
}
