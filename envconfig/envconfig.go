// Package envconfig loads bus-wide tuning defaults from the process
// environment, the way core/config's doc.go describes doing for the rest
// of the foundation: caarlos0/env for struct-tag-driven parsing, joho/
// godotenv to optionally preload a .env file first, and a package-level
// cache so repeated Load calls in the same process don't re-parse.
package envconfig

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Defaults holds the bus-wide tunables a deployment can override without
// touching code. Nothing in this module applies them to a loghandler.Param
// automatically; DefaultParam uses its own compiled-in defaults.
type Defaults struct {
	DataHWM     int           `env:"LOGHANDLER_DATA_HWM" envDefault:"1000"`
	CtrlHWM     int           `env:"LOGHANDLER_CTRL_HWM" envDefault:"1000"`
	FlushFreq   time.Duration `env:"LOGHANDLER_FLUSH_FREQ" envDefault:"1s"`
	IErrMax     int           `env:"LOGHANDLER_IERR_MAX" envDefault:"10"`
	DotenvPath  string        `env:"LOGHANDLER_DOTENV_PATH" envDefault:""`
}

var (
	once   sync.Once
	cached Defaults
	loadErr error
)

// Load parses Defaults from the environment, loading DotenvPath first (via
// godotenv) if it's set via the LOGHANDLER_DOTENV_PATH variable — note that
// variable is itself read without a prior dotenv load, so it must come from
// the real environment. The outcome of the first call, Defaults or error,
// is cached and returned by every later call until Reset, mirroring
// core/config's per-type cache.
func Load() (Defaults, error) {
	once.Do(func() {
		var probe Defaults
		if err := env.Parse(&probe); err != nil {
			loadErr = fmt.Errorf("envconfig: probe parse: %w", err)
			return
		}
		if probe.DotenvPath != "" {
			if err := godotenv.Load(probe.DotenvPath); err != nil {
				loadErr = fmt.Errorf("envconfig: load dotenv %q: %w", probe.DotenvPath, err)
				return
			}
		}
		var d Defaults
		if err := env.Parse(&d); err != nil {
			loadErr = fmt.Errorf("envconfig: parse: %w", err)
			return
		}
		cached = d
	})
	return cached, loadErr
}

// MustLoad is Load but panics on error, for use in program initialization
// paths where a misconfigured environment should fail fast.
func MustLoad() Defaults {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Reset clears the cache. Test-only: production code calls Load exactly
// once per process lifetime.
func Reset() {
	once = sync.Once{}
	cached = Defaults{}
	loadErr = nil
}
