package fill

import (
	"fmt"
	"strings"

	"mapforge/pkg/core"
)

// Rule is a life-like birth/survival rule over the Moore neighbourhood. A
// dead cell becomes alive when its live-neighbour count is in Birth; a live
// cell stays alive when the count is in Survive.
type Rule struct {
	birth, survive uint16
}

// Life is Conway's B3/S23.
var Life = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// ParseRule reads rules in B/S notation such as "B3/S23" or "B5678/S45678".
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, fmt.Errorf("rule %q is not in B/S notation: %w", s, core.ErrInvalidConstruction)
	}
	for i, dst := range []*uint16{&r.birth, &r.survive} {
		for _, ch := range parts[i][1:] {
			if ch < '0' || ch > '8' {
				return Rule{}, fmt.Errorf("rule %q has neighbour count %q: %w", s, ch, core.ErrInvalidConstruction)
			}
			*dst |= 1 << (ch - '0')
		}
	}
	return r, nil
}

// String returns the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

func (r Rule) next(alive bool, neighbours int) bool {
	if neighbours > 8 {
		return false
	}
	if alive {
		return r.survive&(1<<neighbours) != 0
	}
	return r.birth&(1<<neighbours) != 0
}

// FillAutomaton runs steps generations of rule over a bool parameter, where
// true is alive. Neighbours past the edge are dead unless wrap is set, in
// which case every axis is toroidal. It returns the number of cells whose
// value changed.
func FillAutomaton(g core.Grid, name string, rule Rule, steps int, wrap bool) (int, error) {
	if err := checkGrid(g); err != nil {
		return 0, err
	}
	if steps < 1 {
		return 0, fmt.Errorf("automaton steps %d must be positive: %w", steps, core.ErrInvalidGeometry)
	}
	p, err := lookup(g, name)
	if err != nil {
		return 0, err
	}
	if p.Type() != core.ParamTypeBool {
		return 0, fmt.Errorf("automaton needs a bool parameter, %q is %s: %w", name, p.Type(), core.ErrInvalidValue)
	}
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}

	var (
		cells []*core.Cell
		start []bool
	)
	for c := range g.Cells() {
		v, _ := c.Value(name)
		cells = append(cells, c)
		start = append(start, v == core.Bool(true))
	}

	strides := make([]int, len(extents))
	stride := 1
	for axis := len(extents) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= extents[axis]
	}
	offsets := mooreOffsets(len(extents))

	cur := append([]bool(nil), start...)
	nxt := make([]bool, len(cur))
	coords := make([]int, len(extents))
	for range steps {
		for i := range cur {
			rem := i
			for axis, s := range strides {
				coords[axis] = rem / s
				rem %= s
			}
			n := 0
			for _, off := range offsets {
				if j, ok := neighbour(coords, off, extents, strides, wrap); ok && cur[j] {
					n++
				}
			}
			nxt[i] = rule.next(cur[i], n)
		}
		cur, nxt = nxt, cur
	}

	changed := 0
	for i, c := range cells {
		if cur[i] == start[i] {
			continue
		}
		if err := c.SetValue(name, core.Bool(cur[i])); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// mooreOffsets lists every vector in {-1,0,1}^dims except the origin.
func mooreOffsets(dims int) [][]int {
	var out [][]int
	off := make([]int, dims)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == dims {
			for _, d := range off {
				if d != 0 {
					out = append(out, append([]int(nil), off...))
					return
				}
			}
			return
		}
		for d := -1; d <= 1; d++ {
			off[axis] = d
			walk(axis + 1)
		}
	}
	walk(0)
	return out
}

func neighbour(coords, off, extents, strides []int, wrap bool) (int, bool) {
	idx := 0
	for axis, c := range coords {
		n := extents[axis]
		c += off[axis]
		if c < 0 || c >= n {
			if !wrap {
				return 0, false
			}
			c = (c + n) % n
		}
		idx += c * strides[axis]
	}
	return idx, true
}
