package browsergate

import (
	"strings"

	"github.com/dmitrymomot/browsergate/pkg/browserlist"
	"github.com/dmitrymomot/browsergate/pkg/browserver"
)

// defaultQueryResolver backs Matches with the bundled query engine
func defaultQueryResolver(queries []string, env, path string) ([]string, error) {
	var opts []browserlist.Option
	if env != "" {
		opts = append(opts, browserlist.WithEnv(env))
	}
	if path != "" {
		opts = append(opts, browserlist.WithPath(path))
	}
	return browserlist.Resolve(queries, opts...)
}

// Matches reports whether the client behind the User-Agent string
// falls inside the browser set described by the compatibility query.
//
// The query list comes from WithBrowsers or, when absent, from project
// configuration discovered through WithPath/WithEnv. The resolved
// client matches when any target agrees on family (case-insensitive)
// and satisfies the version comparison policy: patch differences are
// ignored by default, WithIgnoreMinor widens to the major version, and
// WithAllowHigherVersions accepts anything at or above a target.
//
// UA resolution itself never fails; only query engine errors (unknown
// query forms, broken project config) are returned.
func Matches(ua string, opts ...Option) (bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	queries := cfg.browsers
	if len(queries) > 0 {
		rewritten := make([]string, len(queries))
		for i, query := range queries {
			rewritten[i] = NormalizeQuery(query)
		}
		queries = rewritten
	}

	tokens, err := cfg.resolver(queries, cfg.env, cfg.path)
	if err != nil {
		return false, err
	}

	targets := parseTargets(tokens)
	resolved := ResolveUserAgent(ua)
	strictness := cfg.strictness()

	for _, target := range targets {
		if !strings.EqualFold(target.Family, resolved.Family) {
			continue
		}
		if browserver.Satisfies(resolved.Version, target.Version, strictness, cfg.allowHigher) {
			return true, nil
		}
	}

	return false, nil
}

func (c *config) strictness() browserver.Strictness {
	switch {
	case c.ignoreMinor:
		return browserver.StrictnessIgnoreMinor
	case c.ignorePatch:
		return browserver.StrictnessIgnorePatch
	default:
		return browserver.StrictnessExact
	}
}
