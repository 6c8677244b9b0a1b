package render

import (
	"fmt"
	"math"
	"slices"

	"mapforge/pkg/core"
)

// Layer is one parameter of a planar grid sampled in image order: the value
// of cell (x, y) is Values[y*W+x].
type Layer struct {
	Name   string
	Type   core.ParamType
	W, H   int
	Values []float64
	// Labels maps string values to their level; Values holds the index.
	Labels []string
}

// Sample reads the named parameter of every cell into a Layer. Booleans
// sample as 0 or 1 and strings as their position in the allowed set, or in
// first-seen order when the parameter accepts any string.
func Sample(g core.Grid, name string) (*Layer, error) {
	w, h, err := planeSize(g)
	if err != nil {
		return nil, err
	}
	def, ok := g.Definitions().Lookup(name)
	if !ok {
		return nil, fmt.Errorf("parameter %q is not defined on map %q: %w", name, g.Name(), core.ErrUnknownParameter)
	}

	l := &Layer{Name: name, Type: def.Type(), W: w, H: h, Values: make([]float64, w*h)}
	if sp, ok := def.(*core.StringParameter); ok {
		l.Labels = sp.Allowed()
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := planeCell(g, x, y)
			if err != nil {
				return nil, err
			}
			v, _ := c.Value(name)
			l.Values[y*w+x] = l.level(v)
		}
	}
	return l, nil
}

func (l *Layer) level(v core.Value) float64 {
	if f, ok := core.Float64(v); ok {
		return f
	}
	s, ok := v.(core.String)
	if !ok {
		return 0
	}
	idx := slices.Index(l.Labels, string(s))
	if idx < 0 {
		l.Labels = append(l.Labels, string(s))
		idx = len(l.Labels) - 1
	}
	return float64(idx)
}

// Range returns the smallest and largest sampled value.
func (l *Layer) Range() (lo, hi float64) {
	if len(l.Values) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range l.Values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Indices quantises the layer into palette indices in [0, levels). Boolean
// and string layers map each value to its own index.
func (l *Layer) Indices(levels int) []uint8 {
	out := make([]uint8, len(l.Values))
	if levels <= 1 {
		return out
	}
	levels = min(levels, 256)

	switch l.Type {
	case core.ParamTypeBool, core.ParamTypeString:
		for i, v := range l.Values {
			out[i] = uint8(min(int(v), levels-1))
		}
		return out
	}

	lo, hi := l.Range()
	span := hi - lo
	if span <= 0 {
		return out
	}
	for i, v := range l.Values {
		idx := int((v-lo)/span*float64(levels-1) + 0.5)
		out[i] = uint8(max(0, min(idx, levels-1)))
	}
	return out
}
