package fill

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"mapforge/pkg/core"
)

// Op is a fill operation driven by flag-style string arguments, as used by
// recipes and the CLI.
type Op func(g core.Grid, param string, v core.Value, args map[string]string) (int, error)

var ops = map[string]Op{}

// Register adds an operation under the provided name.
func Register(name string, op Op) {
	if name == "" || op == nil {
		return
	}
	ops[name] = op
}

// Ops returns a copy of the registered operations.
func Ops() map[string]Op {
	return maps.Clone(ops)
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Op, bool) {
	op, ok := ops[name]
	return op, ok
}

func init() {
	Register("full", func(g core.Grid, param string, v core.Value, _ map[string]string) (int, error) {
		return FullFill(g, param, v)
	})
	Register("default", func(g core.Grid, param string, _ core.Value, _ map[string]string) (int, error) {
		if param == "" {
			return FullDefaultFillAll(g)
		}
		return FullDefaultFill(g, param)
	})
	Register("center", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		extent, err := intArg(args, "extent")
		if err != nil {
			return 0, err
		}
		return FillCenter(g, param, v, extent)
	})
	Register("border", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		thickness, err := intArg(args, "thickness")
		if err != nil {
			return 0, err
		}
		return FillBorder(g, param, v, thickness)
	})
	Register("interior", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		margin, err := intArg(args, "margin")
		if err != nil {
			return 0, err
		}
		return FillInterior(g, param, v, margin)
	})
	Register("corner", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		size, err := intArg(args, "size")
		if err != nil {
			return 0, err
		}
		mask, err := intListArg(args, "mask")
		if err != nil {
			return 0, err
		}
		return FillCorner(g, param, v, size, mask)
	})
	Register("corners", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		size, err := intArg(args, "size")
		if err != nil {
			return 0, err
		}
		return FillCorners(g, param, v, size)
	})
	Register("band", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		axis, err := intArg(args, "axis")
		if err != nil {
			return 0, err
		}
		start, err := intArg(args, "start")
		if err != nil {
			return 0, err
		}
		length, err := intArg(args, "length")
		if err != nil {
			return 0, err
		}
		return FillBand(g, param, v, axis, start, length)
	})
	Register("scatter", func(g core.Grid, param string, v core.Value, args map[string]string) (int, error) {
		raw, ok := args["chance"]
		if !ok {
			return 0, fmt.Errorf("missing argument %q: %w", "chance", core.ErrInvalidGeometry)
		}
		chance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("argument chance=%q: %w", raw, core.ErrInvalidGeometry)
		}
		var seed int64
		if s, ok := args["seed"]; ok {
			if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
				return 0, fmt.Errorf("argument seed=%q: %w", s, core.ErrInvalidGeometry)
			}
		}
		return FillScatter(g, param, v, chance, seed)
	})
	Register("automaton", func(g core.Grid, param string, _ core.Value, args map[string]string) (int, error) {
		rule := Life
		if raw, ok := args["rule"]; ok {
			parsed, err := ParseRule(raw)
			if err != nil {
				return 0, err
			}
			rule = parsed
		}
		steps, err := intArg(args, "steps")
		if err != nil {
			return 0, err
		}
		wrap := false
		if raw, ok := args["wrap"]; ok {
			if wrap, err = strconv.ParseBool(raw); err != nil {
				return 0, fmt.Errorf("argument wrap=%q: %w", raw, core.ErrInvalidGeometry)
			}
		}
		return FillAutomaton(g, param, rule, steps, wrap)
	})
}

// valueless ops ignore the value they are given.
var valueless = map[string]bool{"default": true, "automaton": true}

// TakesValue reports whether the named op writes a caller-supplied value.
func TakesValue(name string) bool { return !valueless[name] }

func intArg(args map[string]string, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q: %w", key, core.ErrInvalidGeometry)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("argument %s=%q: %w", key, raw, core.ErrInvalidGeometry)
	}
	return n, nil
}

// intListArg parses a comma-separated list such as "0,1".
func intListArg(args map[string]string, key string) ([]int, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing argument %q: %w", key, core.ErrInvalidGeometry)
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("argument %s=%q: %w", key, raw, core.ErrInvalidGeometry)
		}
		out = append(out, n)
	}
	return out, nil
}
