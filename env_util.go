package magellan

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys consumed by FromEnv.
const (
	EnvSchema        = "MAGELLAN_SCHEMA"
	EnvDefaultSRID   = "MAGELLAN_DEFAULT_SRID"
	EnvDefaultType   = "MAGELLAN_DEFAULT_TYPE"
	EnvAutoTransform = "MAGELLAN_AUTO_TRANSFORM"
)

// FromEnv builds a Config from the MAGELLAN_* environment variables,
// loading a .env file first when one is present. Unset variables keep
// the stock defaults; malformed values fail rather than being silently
// replaced.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := NewConfig()
	cfg.Schema = GetEnvOrDefault(EnvSchema, cfg.Schema)
	if v := os.Getenv(EnvDefaultSRID); v != "" {
		srid, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an SRID: %w", EnvDefaultSRID, v, err)
		}
		cfg.DefaultSRID = int32(srid)
	}
	if v := os.Getenv(EnvDefaultType); v != "" {
		switch ColumnType(v) {
		case GeometryColumn, GeographyColumn:
			cfg.DefaultType = ColumnType(v)
		default:
			return nil, fmt.Errorf("%s: %q is not a column type, want %q or %q",
				EnvDefaultType, v, GeometryColumn, GeographyColumn)
		}
	}
	if v := os.Getenv(EnvAutoTransform); v != "" {
		auto, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a boolean: %w", EnvAutoTransform, v, err)
		}
		cfg.AutoTransform = auto
	}
	return cfg, nil
}

func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
