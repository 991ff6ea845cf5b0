package configs

import "time"

const (
	UpstreamModeOnionoo = "onionoo"
	UpstreamModeFile    = "file"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Upstream UpstreamConfig `mapstructure:"upstream" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// UpstreamConfig selects where relay documents come from.
type UpstreamConfig struct {
	Mode          string `mapstructure:"mode" validate:"required,oneof=onionoo file"`
	BaseURL       string `mapstructure:"base_url" validate:"required_if=Mode onionoo,omitempty,url"`
	Timeout       int    `mapstructure:"timeout" validate:"required,min=1"` // seconds, whole request
	UserAgent     string `mapstructure:"user_agent" validate:"required"`
	NetworkWeight bool   `mapstructure:"network_weight"`
	SnapshotDir   string `mapstructure:"snapshot_dir" validate:"required_if=Mode file"`
	SnapshotFile  string `mapstructure:"snapshot_file" validate:"required_if=Mode file"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c UpstreamConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ReportConfig holds report defaults shared by the page and the CLI.
type ReportConfig struct {
	DefaultCountry string `mapstructure:"default_country" validate:"required,country_code"`
}
