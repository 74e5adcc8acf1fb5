package core

import (
	"log/slog"
	"strings"

	"github.com/aretw0/plume/pkg/markdown"
)

// Config enumerates the editor construction parameters explicitly.
type Config struct {
	// InitialText seeds the document buffer.
	InitialText string
	// AutoDetect resolves direction from the buffer content on every edit.
	AutoDetect bool
	// DefaultDirection is used when auto-detect finds no signal (empty text).
	DefaultDirection Direction
	// OnTextChange is invoked synchronously after every buffer replacement
	// with the new text and its rendered HTML. May be nil.
	OnTextChange func(text, html string)
	// OnDirectionChange is invoked synchronously whenever the resolved
	// direction actually changes. May be nil.
	OnDirectionChange func(Direction)
	// Logger receives debug events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Editor holds the current document text, its rendered HTML, and the
// resolved text direction. It is the sole owner of the buffer: every edit
// replaces the text wholesale and re-renders.
//
// An Editor assumes a single logical writer. Callbacks run in-line during
// mutation; re-entrant calls from inside a callback are the caller's
// responsibility.
type Editor struct {
	text string
	html string

	direction        Direction
	defaultDirection Direction
	autoDetect       bool
	override         Direction
	hasOverride      bool

	onText      func(text, html string)
	onDirection func(Direction)
	logger      *slog.Logger
}

// NewEditor creates an Editor from an explicit Config.
// Construction does not fire callbacks.
func NewEditor(cfg Config) *Editor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e := &Editor{
		text:             cfg.InitialText,
		defaultDirection: cfg.DefaultDirection,
		autoDetect:       cfg.AutoDetect,
		direction:        cfg.DefaultDirection,
		onText:           cfg.OnTextChange,
		onDirection:      cfg.OnDirectionChange,
		logger:           logger,
	}
	e.html = markdown.Render(e.text)
	e.direction = e.resolveDirection()
	return e
}

// Text returns the current document text.
func (e *Editor) Text() string { return e.text }

// HTML returns the rendering of the last set text.
func (e *Editor) HTML() string { return e.html }

// Direction returns the currently resolved direction.
func (e *Editor) Direction() Direction { return e.direction }

// AutoDetect reports whether automatic direction detection is active.
func (e *Editor) AutoDetect() bool { return e.autoDetect }

// SetText replaces the document text, re-renders, fires the text-changed
// callback, then re-resolves direction (firing direction-changed once if it
// moved).
func (e *Editor) SetText(text string) {
	e.text = text
	e.html = markdown.Render(text)
	if e.onText != nil {
		e.onText(e.text, e.html)
	}
	e.updateDirection()
}

// ToggleDirection pins a manual override to the opposite of the current
// direction and disables auto-detect.
func (e *Editor) ToggleDirection() {
	e.override = e.direction.Opposite()
	e.hasOverride = true
	e.autoDetect = false
	e.updateDirection()
}

// SetAutoDetect enables or disables automatic direction detection.
// Enabling clears any manual override and re-resolves; disabling freezes
// the current direction until a toggle or re-enable.
func (e *Editor) SetAutoDetect(enabled bool) {
	if !enabled {
		e.autoDetect = false
		return
	}
	e.autoDetect = true
	e.hasOverride = false
	e.updateDirection()
}

// InsertMarkdown builds the snippet and caret offset for a toolbar action.
// Pure: the caller splices the snippet into its own buffer and calls SetText.
func (e *Editor) InsertMarkdown(action markdown.Action, selected string) (string, int) {
	return markdown.BuildInsertion(action, selected)
}

// Clear empties the document text, drops any manual override, and fires the
// text-changed callback with two empty strings.
func (e *Editor) Clear() {
	e.text = ""
	e.html = markdown.Render("")
	e.hasOverride = false
	if e.onText != nil {
		e.onText("", "")
	}
	e.updateDirection()
}

// resolveDirection applies the precedence policy: manual override, then
// auto-detect (default direction when the text carries no signal), then the
// previously held direction.
func (e *Editor) resolveDirection() Direction {
	switch {
	case e.hasOverride:
		return e.override
	case e.autoDetect:
		if strings.TrimSpace(e.text) == "" {
			return e.defaultDirection
		}
		return DetectDirection(e.text)
	default:
		return e.direction
	}
}

func (e *Editor) updateDirection() {
	next := e.resolveDirection()
	if next == e.direction {
		return
	}
	e.direction = next
	e.logger.Debug("direction changed", "direction", next.String())
	if e.onDirection != nil {
		e.onDirection(next)
	}
}
