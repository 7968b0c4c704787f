package services

import (
	"time"

	"github.com/ragbase/kbchat/internal/core/domain"
	"github.com/ragbase/kbchat/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyServerURL    = "server.url"
	KeySyncInterval = "sync.interval_seconds"
	KeyVerbose      = "verbose"
)

// LoadSettings reads settings from the config store, applying defaults
// for absent keys.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()
	if store == nil {
		return settings
	}

	if url := store.GetString(KeyServerURL); url != "" {
		settings.ServerURL = url
	}
	if secs := store.GetInt(KeySyncInterval); secs > 0 {
		settings.SyncInterval = time.Duration(secs) * time.Second
	}
	settings.Verbose = store.GetBool(KeyVerbose)

	return settings
}
