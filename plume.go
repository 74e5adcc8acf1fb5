package plume

import (
	"log/slog"

	"github.com/aretw0/plume/internal/platform"
	"github.com/aretw0/plume/pkg/core"
	"github.com/aretw0/plume/pkg/markdown"
)

// --- Types ---

// Editor is the public alias for the editor state component.
type Editor = core.Editor

// Direction is the public alias for the text direction enumeration.
type Direction = core.Direction

const (
	LeftToRight = core.LeftToRight
	RightToLeft = core.RightToLeft
)

// Action is the public alias for a toolbar insertion action.
type Action = markdown.Action

const (
	ActionHeading1      = markdown.ActionHeading1
	ActionHeading2      = markdown.ActionHeading2
	ActionHeading3      = markdown.ActionHeading3
	ActionBold          = markdown.ActionBold
	ActionItalic        = markdown.ActionItalic
	ActionStrikethrough = markdown.ActionStrikethrough
	ActionUnorderedItem = markdown.ActionUnorderedItem
	ActionOrderedItem   = markdown.ActionOrderedItem
	ActionQuote         = markdown.ActionQuote
	ActionLink          = markdown.ActionLink
	ActionImage         = markdown.ActionImage
	ActionInlineCode    = markdown.ActionInlineCode
)

// --- Configuration ---

// Option defines a functional option for configuring the editor.
type Option = platform.Option

// WithInitialText seeds the editor buffer.
func WithInitialText(text string) Option {
	return platform.WithInitialText(text)
}

// WithAutoDetect enables or disables automatic direction detection.
func WithAutoDetect(enabled bool) Option {
	return platform.WithAutoDetect(enabled)
}

// WithDefaultDirection sets the direction used when detection has no signal.
func WithDefaultDirection(d Direction) Option {
	return platform.WithDefaultDirection(d)
}

// WithOnTextChange registers the text-changed callback, invoked with the new
// text and its rendered HTML after every edit.
func WithOnTextChange(fn func(text, html string)) Option {
	return platform.WithOnTextChange(fn)
}

// WithOnDirectionChange registers the direction-changed callback, invoked
// once per actual direction change.
func WithOnDirectionChange(fn func(Direction)) Option {
	return platform.WithOnDirectionChange(fn)
}

// WithLogger sets the logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// --- Factory ---

// New creates a new Editor.
func New(opts ...Option) *Editor {
	return platform.New(opts...)
}

// --- Operations ---

// Render converts markdown source into HTML without an editor instance.
func Render(text string) string {
	return markdown.Render(text)
}

// Detect classifies a text blob as left-to-right or right-to-left.
func Detect(text string) Direction {
	return core.DetectDirection(text)
}

// BuildInsertion produces the markdown snippet and caret offset for a
// toolbar action. See markdown.BuildInsertion.
func BuildInsertion(action Action, selected string) (string, int) {
	return markdown.BuildInsertion(action, selected)
}
