package app

import (
	"fmt"

	"mapforge/pkg/core"
)

// viewableNames returns the parameters of g a viewer can cycle through.
func viewableNames(g core.Grid) ([]string, error) {
	if g == nil {
		return nil, core.ErrNilArgument
	}
	names := g.Definitions().Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("map %q has no parameters to show", g.Name())
	}
	return names, nil
}
