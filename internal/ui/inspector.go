package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mapforge/pkg/core"
)

// Describe renders the type and constraint of a parameter, for example
// "int [0, 100]" or "string {grass, sand}".
func Describe(p core.ParameterDefinition) string {
	switch p := p.(type) {
	case *core.NumericParameter[int]:
		b := p.Bounds()
		return describeBounds(p.Type(), float64(b.Min), float64(b.Max), b.HasMin, b.HasMax)
	case *core.NumericParameter[int64]:
		b := p.Bounds()
		return describeBounds(p.Type(), float64(b.Min), float64(b.Max), b.HasMin, b.HasMax)
	case *core.NumericParameter[float64]:
		b := p.Bounds()
		return describeBounds(p.Type(), b.Min, b.Max, b.HasMin, b.HasMax)
	case *core.StringParameter:
		if allowed := p.Allowed(); len(allowed) > 0 {
			return fmt.Sprintf("string {%s}", strings.Join(allowed, ", "))
		}
		return "string"
	case nil:
		return ""
	default:
		return string(p.Type())
	}
}

func describeBounds(t core.ParamType, lo, hi float64, hasMin, hasMax bool) string {
	if !hasMin && !hasMax {
		return string(t)
	}
	open, low := "(", "-inf"
	if hasMin {
		open, low = "[", formatFloat(lo)
	}
	high, shut := "+inf", ")"
	if hasMax {
		high, shut = formatFloat(hi), "]"
	}
	return fmt.Sprintf("%s %s%s, %s%s", t, open, low, high, shut)
}

func formatFloat(v float64) string {
	if math.Trunc(v) == v && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// InspectorLines lists the values of the cell at coords, one parameter per
// line, marking the highlighted parameter with "> ".
func InspectorLines(g core.Grid, coords []int, highlight string) []string {
	if g == nil {
		return nil
	}
	lines := []string{g.Name()}
	c, err := g.Cell(coords...)
	if err != nil {
		return append(lines, "no cell selected")
	}
	lines = append(lines, fmt.Sprintf("cell %v", c.Coordinates()))
	for _, p := range g.Definitions() {
		v, _ := c.Value(p.Name())
		marker := "  "
		if p.Name() == highlight {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s = %s", marker, p.Name(), core.FormatValue(v)))
		lines = append(lines, "    "+Describe(p))
	}
	return lines
}
