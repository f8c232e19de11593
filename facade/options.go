package facade

import (
	"log/slog"
	"time"

	"github.com/lindqvist-dev/svalid/validate"
)

// Option configures a Handle, mirroring the façade's option table:
// strict_mode, allow_unknown_fields, allow_empty_elements,
// max_validation_depth, and timeout_ms, plus an ambient logger.
type Option func(*settings)

type settings struct {
	validatorOpts []validate.Option
	logger        *slog.Logger
}

func applySettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithStrictMode elevates warnings to errors in every Result this Handle
// produces.
func WithStrictMode(strict bool) Option {
	return func(s *settings) {
		s.validatorOpts = append(s.validatorOpts, validate.WithStrictMode(strict))
	}
}

// WithAllowUnknownFields makes every map/element schema behave as open
// regardless of what it declares.
func WithAllowUnknownFields(allow bool) Option {
	return func(s *settings) {
		s.validatorOpts = append(s.validatorOpts, validate.WithAllowUnknownFields(allow))
	}
}

// WithAllowEmptyElements disables the empty-element INVALID_ELEMENT rule.
func WithAllowEmptyElements(allow bool) Option {
	return func(s *settings) {
		s.validatorOpts = append(s.validatorOpts, validate.WithAllowEmptyElements(allow))
	}
}

// WithMaxValidationDepth sets the recursion bound (default 100).
func WithMaxValidationDepth(max int) Option {
	return func(s *settings) {
		s.validatorOpts = append(s.validatorOpts, validate.WithMaxValidationDepth(max))
	}
}

// WithTimeoutMillis sets a best-effort wall-clock deadline in milliseconds
// for a single validate call. 0 (the default) disables the deadline.
func WithTimeoutMillis(ms int) Option {
	return func(s *settings) {
		s.validatorOpts = append(s.validatorOpts, validate.WithTimeout(time.Duration(ms)*time.Millisecond))
	}
}

// WithLogger sets the logger used for debug-level diagnostics. If unset,
// no logging is performed.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
		s.validatorOpts = append(s.validatorOpts, validate.WithLogger(logger))
	}
}
