// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv (optional .env file support) and
// github.com/caarlos0/env/v11 (struct tag parsing). Declare a struct with
// env tags and defaults, then call Load:
//
//	type ListConfig struct {
//	    MaxInputLength  int           `env:"LISTKIT_MAX_INPUT_LENGTH" envDefault:"500"`
//	    AlertClearDelay time.Duration `env:"LISTKIT_ALERT_CLEAR_DELAY" envDefault:"5s"`
//	}
//
//	cfg, err := config.Load[ListConfig]()
//
// MustLoad panics on failure for configuration the process cannot run
// without.
package config
