package validate

import (
	"log/slog"
	"time"
)

// Option configures a Validator, mirroring the façade's option table.
type Option func(*config)

type config struct {
	strictMode         bool
	allowUnknownFields bool
	allowEmptyElements bool
	maxDepth           int
	timeout            time.Duration
	logger             *slog.Logger
}

func defaultConfig() *config {
	return &config{
		maxDepth: 100,
	}
}

// WithStrictMode elevates every warning in a ValidateDocument result to
// an error, flipping valid to false if any warning was produced.
func WithStrictMode(strict bool) Option {
	return func(c *config) { c.strictMode = strict }
}

// WithAllowUnknownFields makes every Map/Element schema behave as open
// regardless of what it declares.
func WithAllowUnknownFields(allow bool) Option {
	return func(c *config) { c.allowUnknownFields = allow }
}

// WithAllowEmptyElements disables the empty-element INVALID_ELEMENT rule
// for an Element schema that declares at least one attribute or content
// type but is matched against a value with none.
func WithAllowEmptyElements(allow bool) Option {
	return func(c *config) { c.allowEmptyElements = allow }
}

// WithMaxValidationDepth sets the recursion bound. The default is 100;
// values <= 0 are ignored.
func WithMaxValidationDepth(max int) Option {
	return func(c *config) {
		if max > 0 {
			c.maxDepth = max
		}
	}
}

// WithTimeout sets a best-effort wall-clock deadline for a single
// ValidateDocument call. Zero (the default) disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLogger sets the logger used for debug-level diagnostics during
// schema loading and validation. If unset, no logging is performed.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
