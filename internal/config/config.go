// internal/config/config.go
//
// Configuration for the Wordle helper, merged in priority order:
// defaults -> optional YAML config file -> HELPER_* environment variables.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by the helper.
const (
	KeyLogLevel   = "log.level"
	KeyServerPort = "server.port"
	KeyWordsFile  = "words.file"
	KeyWordsDB    = "words.db"
)

var current *viper.Viper

// Load initializes configuration. A missing config file is not an error;
// a malformed one is.
func Load() error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("HELPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyServerPort, "5175")
	v.SetDefault(KeyWordsFile, "")
	v.SetDefault(KeyWordsDB, "")

	if path := configPath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	current = v
	return nil
}

// GetString returns a config value, loading defaults first if Load was
// never called.
func GetString(key string) string {
	if current == nil {
		_ = Load()
	}
	return current.GetString(key)
}

// configPath locates the config file: HELPER_CONFIG wins, then the working
// directory, then the user config dir.
func configPath() string {
	if path, ok := os.LookupEnv("HELPER_CONFIG"); ok && path != "" {
		return path
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, "wordle-helper.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "wordle-helper", "config.yaml"))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
