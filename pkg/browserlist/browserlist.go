// Package browserlist resolves browser compatibility queries into
// concrete browser/version tokens.
package browserlist

import (
	"sort"
	"strings"
)

// Option configures query resolution.
type Option func(*config)

// config holds the resolution configuration.
type config struct {
	env  string
	path string
}

// WithEnv selects a named environment section from project config.
// It takes precedence over the BROWSERSLIST_ENV and NODE_ENV
// environment variables.
func WithEnv(envName string) Option {
	return func(c *config) {
		c.env = envName
	}
}

// WithPath sets the directory where project config discovery starts.
// Default is the current working directory.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// Resolve expands browser compatibility queries into a flat, sorted
// list of "<name> <version>" tokens, where name is a dataset short
// code and version may denote a range ("13.0-13.1") or a technical
// preview channel ("TP").
//
// A nil or empty query list falls back, in order, to the BROWSERSLIST
// environment variable, project config discovered at the configured
// path, and finally the "defaults" query. Query errors are returned
// as-is: an unknown query form or browser name is a caller mistake,
// not something to silently paper over.
func Resolve(queries []string, opts ...Option) ([]string, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	penv := readProcessEnv()

	envName := cfg.env
	if envName == "" {
		envName = penv.Env
	}
	if envName == "" {
		envName = penv.NodeEnv
	}
	if envName == "" {
		envName = "production"
	}

	if len(queries) == 0 {
		switch {
		case penv.Queries != "":
			queries = strings.Split(penv.Queries, ",")
		default:
			fromConfig, err := configQueries(cfg.path, penv.Config, envName)
			if err != nil {
				return nil, err
			}
			queries = fromConfig
		}
	}
	if len(queries) == 0 {
		queries = []string{"defaults"}
	}

	selections, err := resolveQueryList(queries)
	if err != nil {
		return nil, err
	}

	// Deterministic output: browsers alphabetically, newest release
	// first within a browser
	sort.SliceStable(selections, func(i, j int) bool {
		if selections[i].browser != selections[j].browser {
			return selections[i].browser < selections[j].browser
		}
		return releaseIndex(selections[i].browser, selections[i].version) >
			releaseIndex(selections[j].browser, selections[j].version)
	})

	out := make([]string, len(selections))
	for i, sel := range selections {
		out[i] = sel.String()
	}
	return out, nil
}
