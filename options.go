package browsergate

// QueryResolver expands a list of compatibility queries into
// "<name> <version>" tokens. A nil query list means "use project
// defaults discovered at path".
type QueryResolver func(queries []string, env, path string) ([]string, error)

// Option configures the match engine.
type Option func(*config)

// config holds the matching configuration.
type config struct {
	browsers    []string
	env         string
	path        string
	ignoreMinor bool
	ignorePatch bool
	allowHigher bool
	resolver    QueryResolver
}

// defaultConfig returns the default configuration: patch differences
// are ignored, minor differences and higher versions are not.
func defaultConfig() *config {
	return &config{
		ignorePatch: true,
		resolver:    defaultQueryResolver,
	}
}

// WithBrowsers overrides the compatibility query list instead of
// discovering it from project configuration.
func WithBrowsers(queries ...string) Option {
	return func(c *config) {
		c.browsers = queries
	}
}

// WithEnv selects a named environment section from project
// configuration.
func WithEnv(envName string) Option {
	return func(c *config) {
		c.env = envName
	}
}

// WithPath sets the project root where configuration discovery starts.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithIgnoreMinor widens matching to the target's major version: any
// minor and patch qualify. Takes precedence over the patch setting.
func WithIgnoreMinor() Option {
	return func(c *config) {
		c.ignoreMinor = true
	}
}

// WithIgnorePatch controls whether patch differences are ignored.
// Default is true; pass false to require an exact patch match.
func WithIgnorePatch(enabled bool) Option {
	return func(c *config) {
		c.ignorePatch = enabled
	}
}

// WithAllowHigherVersions accepts any client version at or above the
// lowest matching target instead of requiring a version inside the
// target set.
func WithAllowHigherVersions() Option {
	return func(c *config) {
		c.allowHigher = true
	}
}

// WithQueryResolver replaces the built-in query engine. Useful for
// tests and for callers that already resolved their query list.
func WithQueryResolver(resolver QueryResolver) Option {
	return func(c *config) {
		c.resolver = resolver
	}
}
