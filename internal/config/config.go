package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries everything the front-end needs from the environment.
// The API base is injected here rather than compiled in so tests and
// local stubs can point the client anywhere.
type Config struct {
	// APIBase is the base URL of the domain suggester API.
	APIBase string `env:"API_BASE" env-default:"http://localhost:8000"`

	// HTTPTimeout bounds every request the client makes.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`

	// LogDir is where the rotating diagnostic log lives. The TUI owns
	// stdout, so nothing may log there.
	LogDir string `env:"LOG_DIR" env-default:"logs"`

	// StubAddr is the bind address for cmd/stub-api.
	StubAddr string `env:"STUB_ADDR" env-default:"127.0.0.1:8000"`

	// BareAvailable is the availability assumed for legacy bare-string
	// candidates that carry no explicit flag.
	BareAvailable bool `env:"BARE_AVAILABLE" env-default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return &cfg, nil
}
