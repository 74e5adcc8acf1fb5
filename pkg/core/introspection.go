package core

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	TextLength  int    `json:"text_length"`
	Direction   string `json:"direction"`
	AutoDetect  bool   `json:"auto_detect"`
	HasOverride bool   `json:"has_override"`
}

// State implements introspection.Introspectable.
// It shares the Editor's single-goroutine contract.
func (e *Editor) State() any {
	return EditorState{
		TextLength:  len(e.text),
		Direction:   e.direction.String(),
		AutoDetect:  e.autoDetect,
		HasOverride: e.hasOverride,
	}
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
