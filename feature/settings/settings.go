package settings

import (
	"walkroute/core/config"
	"walkroute/core/launcher"
)

const redacted = "***"

// Snapshot is the resolved configuration with secrets masked, together with
// the options the launcher derives from it.
type Snapshot struct {
	Launch   launcher.Options `json:"launch"`
	Server   ServerView       `json:"server"`
	Log      LogView          `json:"log"`
	Database DatabaseView     `json:"database"`
	Storage  StorageView      `json:"storage"`
}

// ServerView is the server section, with the API key masked.
type ServerView struct {
	Port                   int    `json:"port"`
	Environment            string `json:"environment"`
	ApiKey                 string `json:"api_key"`
	ReloadDirs             string `json:"reload_dirs"`
	ReloadDelayMS          int    `json:"reload_delay_ms"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds"`
}

// LogView is the log section.
type LogView struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// DatabaseView is the database section, with the password masked.
type DatabaseView struct {
	Enabled  bool   `json:"enabled"`
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// StorageView is the storage section, with both keys masked.
type StorageView struct {
	Enabled   bool   `json:"enabled"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	UseSSL    bool   `json:"use_ssl"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
}

// NewSnapshot builds a Snapshot from cfg.
func NewSnapshot(cfg *config.Config) Snapshot {
	return Snapshot{
		Launch: launcher.OptionsFor(cfg.Server),
		Server: ServerView{
			Port:                   cfg.Server.Port,
			Environment:            cfg.Server.Environment,
			ApiKey:                 mask(cfg.Server.ApiKey),
			ReloadDirs:             cfg.Server.ReloadDirs,
			ReloadDelayMS:          cfg.Server.ReloadDelayMS,
			ShutdownTimeoutSeconds: cfg.Server.ShutdownTimeoutSeconds,
		},
		Log: LogView{Level: cfg.Log.Level, Format: cfg.Log.Format},
		Database: DatabaseView{
			Enabled:  cfg.Database.Enabled,
			Driver:   cfg.Database.Driver,
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: mask(cfg.Database.Password),
			Name:     cfg.Database.Name,
		},
		Storage: StorageView{
			Enabled:   cfg.Storage.Enabled,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: mask(cfg.Storage.AccessKey),
			SecretKey: mask(cfg.Storage.SecretKey),
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
		},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}
