package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// AppConfig holds the runtime configuration.
// Precedence: config/config.json -> defaults -> environment variable overrides.
type AppConfig struct {
	// DataDir is where the file store keeps its documents.
	DataDir string `json:"dataDir"`
	// StoreBackend selects the persistence adapter: "file", "sqlite" or "memory".
	StoreBackend string `json:"storeBackend"`
	// SQLitePath is the database file used when StoreBackend is "sqlite".
	SQLitePath string `json:"sqlitePath"`

	// Logging configuration
	LogLevel      string `json:"logLevel"`
	LogPath       string `json:"logPath"`
	LogMaxSizeMB  int    `json:"logMaxSizeMB"`
	LogMaxBackups int    `json:"logMaxBackups"`
	LogMaxAgeDays int    `json:"logMaxAgeDays"`
	LogCompress   bool   `json:"logCompress"`
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// loadJSONConfig reads the JSON file into out if present. A missing file is
// not an error; invalid JSON is.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(out)
}

func applyDefaults(c *AppConfig) {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = "file"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "serverhub.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("SERVERHUB_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SERVERHUB_STORE_BACKEND"); v != "" {
		c.StoreBackend = v
	}
	if v := os.Getenv("SERVERHUB_SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("SERVERHUB_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SERVERHUB_LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("SERVERHUB_LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogMaxSizeMB = n
		}
	}
	if v := os.Getenv("SERVERHUB_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogMaxBackups = n
		}
	}
	if v := os.Getenv("SERVERHUB_LOG_MAX_AGE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LogMaxAgeDays = n
		}
	}
	if v := os.Getenv("SERVERHUB_LOG_COMPRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogCompress = b
		}
	}
}
