package configs

import (
	"fmt"
	"strings"

	"relay-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "RELAY_ANALYTICS"

// setDefaults also registers every key that may come only from the environment;
// viper's Unmarshal ignores env vars for keys it has never seen.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("upstream.mode", UpstreamModeOnionoo)
	v.SetDefault("upstream.base_url", "https://onionoo.torproject.org")
	v.SetDefault("upstream.timeout", 30)
	v.SetDefault("upstream.user_agent", "relay-analytics/1.0")
	v.SetDefault("upstream.network_weight", true)
	v.SetDefault("upstream.snapshot_dir", "")
	v.SetDefault("upstream.snapshot_file", "details.json")
	v.SetDefault("report.default_country", "de")
}

// LoadConfig reads configuration from file, applies defaults and environment overrides
// (RELAY_ANALYTICS_UPSTREAM_MODE etc.), and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// "Config.Upstream.SnapshotDir" -> "upstream.snapshotdir"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag := e.Tag(); tag {
	case "required", "required_if":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
