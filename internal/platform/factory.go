package platform

import (
	"github.com/aretw0/plume/pkg/core"
)

// New composes an Editor from functional options.
func New(opts ...Option) *core.Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return core.NewEditor(o.config)
}
