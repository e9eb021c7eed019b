package pathlib

import "github.com/rs/zerolog"

// Option configures a Gateway.
type Option func(*config)

type config struct {
	env        Environment
	redirect   *Redirection
	logger     zerolog.Logger
	autoExpand *bool
}

func newConfig(opts []Option) config {
	cfg := config{
		env:    SystemEnvironment{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.redirect == nil {
		cfg.redirect = NewRedirection()
	}
	if cfg.autoExpand != nil {
		cfg.redirect.SetAutoExpandTilde(*cfg.autoExpand)
	}
	return cfg
}

// WithEnvironment sets the home, temp and token source.
// Defaults to SystemEnvironment.
func WithEnvironment(env Environment) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithAutoExpandTilde expands a leading "~" when computing actual paths.
func WithAutoExpandTilde(on bool) Option {
	return func(c *config) {
		c.autoExpand = &on
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRedirection binds the gateway to an existing Redirection, so that
// several gateways share one sandbox.
func WithRedirection(r *Redirection) Option {
	return func(c *config) {
		c.redirect = r
	}
}
