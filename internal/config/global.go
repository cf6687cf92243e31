// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	// mu guards the package-level cache and overrides.
	mu sync.RWMutex

	// globalConfig caches the last successful Load result.
	globalConfig *Config

	// configPath records where the cached config was loaded from
	// ("" when defaults were used).
	configPath string

	// cfgFileOverride forces loading from a specific config file
	// (set from the --config flag).
	cfgFileOverride string

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
)

// Load returns the application configuration, loading and caching it on
// first use. Subsequent calls return the cached value until an override
// resets the cache.
func Load() (*Config, error) {
	mu.RLock()
	if globalConfig != nil {
		cfg := globalConfig
		mu.RUnlock()
		return cfg, nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	// Re-check under the write lock.
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: cfgFileOverride})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = path
	return cfg, nil
}

// LoadedConfigPath returns the path the cached config was loaded from,
// or "" when defaults (or no cached config) are in effect.
func LoadedConfigPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return configPath
}

// SetConfigFilePathOverride forces subsequent loads to use the given config
// file and clears the cache so the override takes effect immediately.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	cfgFileOverride = path
	globalConfig = nil
	configPath = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	globalConfig = nil
	configPath = ""
}

// Reset clears test overrides and the cache. Call from test cleanup to
// restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cfgFileOverride = ""
	configDirOverride = ""
	globalConfig = nil
	configPath = ""
}
