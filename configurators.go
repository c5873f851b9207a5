package querybuilder

// Option configures a statement at construction time.
type Option func(c *config)

type config struct {
	logger Logger
}

func newConfig(opts []Option) config {
	c := config{logger: nopLogger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger makes the statement report every built query to l at debug
// level and every rejected one at warn level.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
