// Package stats summarises the values a parameter takes across a map.
package stats

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"mapforge/pkg/core"
)

// Summary describes one parameter over every cell of a map. Numeric fields
// are set for int, float and bool parameters; bools count as 0 or 1.
// Histogram is set for bool and string parameters.
type Summary struct {
	Parameter string
	Type      core.ParamType
	Count     int

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64

	Histogram map[string]int
}

// Numeric reports whether the numeric fields are meaningful.
func (s Summary) Numeric() bool { return s.Type != core.ParamTypeString }

// Summarize computes the summary of the named parameter.
func Summarize(g core.Grid, name string) (Summary, error) {
	if g == nil {
		return Summary{}, core.ErrNilArgument
	}
	def, ok := g.Definitions().Lookup(name)
	if !ok {
		return Summary{}, fmt.Errorf("parameter %q is not defined on map %q: %w", name, g.Name(), core.ErrUnknownParameter)
	}

	s := Summary{Parameter: name, Type: def.Type()}
	categorical := s.Type == core.ParamTypeBool || s.Type == core.ParamTypeString
	if categorical {
		s.Histogram = make(map[string]int)
	}

	var xs []float64
	for c := range g.Cells() {
		v, _ := c.Value(name)
		s.Count++
		if categorical {
			s.Histogram[core.FormatValue(v)]++
		}
		if f, ok := core.Float64(v); ok {
			xs = append(xs, f)
		}
	}

	if s.Numeric() && len(xs) > 0 {
		s.Mean, s.StdDev = stat.PopMeanStdDev(xs, nil)
		s.Min = floats.Min(xs)
		s.Max = floats.Max(xs)
	}
	return s, nil
}

// SummarizeAll summarises every parameter in definition order.
func SummarizeAll(g core.Grid) ([]Summary, error) {
	if g == nil {
		return nil, core.ErrNilArgument
	}
	names := g.Definitions().Names()
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		s, err := Summarize(g, name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// String renders the summary on one line.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s cells", s.Parameter, s.Type, humanize.Comma(int64(s.Count)))
	if s.Numeric() && s.Count > 0 {
		fmt.Fprintf(&b, ", mean %s, sd %s, min %s, max %s",
			humanize.FtoaWithDigits(s.Mean, 3),
			humanize.FtoaWithDigits(s.StdDev, 3),
			humanize.Ftoa(s.Min),
			humanize.Ftoa(s.Max))
	}
	for _, key := range slices.Sorted(maps.Keys(s.Histogram)) {
		fmt.Fprintf(&b, ", %s=%s", key, humanize.Comma(int64(s.Histogram[key])))
	}
	return b.String()
}
