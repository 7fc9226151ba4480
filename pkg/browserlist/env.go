package browserlist

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// processEnv carries the environment variables the reference ecosystem
// honors. They are read on every Resolve call so tests and long-lived
// processes observe changes.
type processEnv struct {
	Queries string `env:"BROWSERSLIST"`
	Config  string `env:"BROWSERSLIST_CONFIG"`
	Env     string `env:"BROWSERSLIST_ENV"`
	NodeEnv string `env:"NODE_ENV"`
}

var defaultEnvLoaded sync.Once

func readProcessEnv() processEnv {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var e processEnv
	// Parsing plain string fields cannot fail; a zero value is the
	// correct fallback regardless
	_ = env.Parse(&e)
	return e
}
