// Package builtin registers the emitters shipped with forgeui.
package builtin

import (
	"github.com/alexisbeaulieu97/forgeui/internal/emitter"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/angular"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/html"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/react"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/svelte"
	"github.com/alexisbeaulieu97/forgeui/internal/emitter/vue"
)

// Register adds the html, react, vue, svelte and angular emitters to reg.
func Register(reg *emitter.Registry, assets html.Assets) error {
	var shared emitter.Assets
	if assets != nil {
		shared = assets
	}
	emitters := []emitter.Emitter{
		html.New(assets),
		react.New(shared),
		vue.New(shared),
		svelte.New(shared),
		angular.New(shared),
	}
	for _, e := range emitters {
		if err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every built-in emitter.
func NewRegistry(assets html.Assets) (*emitter.Registry, error) {
	reg := emitter.NewRegistry()
	if err := Register(reg, assets); err != nil {
		return nil, err
	}
	return reg, nil
}
