// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Load caches one parsed
// value per struct type for the lifetime of the process; Parse bypasses the
// cache; ResetCache clears it between tests.
//
//	type Config struct {
//	    MaxRetained int           `env:"NOTIFY_MAX_RETAINED" envDefault:"50"`
//	    Interval    time.Duration `env:"NOTIFY_SIMULATION_INTERVAL" envDefault:"20s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
