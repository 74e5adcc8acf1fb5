package platform

import (
	"log/slog"

	"github.com/aretw0/plume/pkg/core"
)

// options holds the internal configuration for the editor facade.
// Functional options write into an explicit core.Config so the core never
// sees an untyped options bag.
type options struct {
	config core.Config
}

// Option defines a functional option for configuring the editor.
type Option func(*options)

// defaultOptions returns the default configuration: empty buffer,
// auto-detect on, left-to-right fallback.
func defaultOptions() *options {
	return &options{
		config: core.Config{
			AutoDetect:       true,
			DefaultDirection: core.LeftToRight,
		},
	}
}

// WithInitialText seeds the editor buffer.
func WithInitialText(text string) Option {
	return func(o *options) {
		o.config.InitialText = text
	}
}

// WithAutoDetect enables or disables automatic direction detection.
func WithAutoDetect(enabled bool) Option {
	return func(o *options) {
		o.config.AutoDetect = enabled
	}
}

// WithDefaultDirection sets the direction used when detection has no signal.
func WithDefaultDirection(d core.Direction) Option {
	return func(o *options) {
		o.config.DefaultDirection = d
	}
}

// WithOnTextChange registers the text-changed callback.
func WithOnTextChange(fn func(text, html string)) Option {
	return func(o *options) {
		o.config.OnTextChange = fn
	}
}

// WithOnDirectionChange registers the direction-changed callback.
func WithOnDirectionChange(fn func(core.Direction)) Option {
	return func(o *options) {
		o.config.OnDirectionChange = fn
	}
}

// WithLogger sets the logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.config.Logger = logger
	}
}
