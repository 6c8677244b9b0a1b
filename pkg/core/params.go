package core

import (
	"fmt"
	"slices"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes text parameters.
	ParamTypeString ParamType = "string"
)

// ParseParamType maps a textual type name onto a ParamType.
func ParseParamType(s string) (ParamType, error) {
	switch t := ParamType(s); t {
	case ParamTypeBool, ParamTypeInt, ParamTypeFloat, ParamTypeString:
		return t, nil
	default:
		return "", fmt.Errorf("unknown parameter type %q: %w", s, ErrInvalidConstruction)
	}
}

// ParameterDefinition describes one named, typed and validated cell attribute.
// IsValid rejects values whose type tag differs from Type.
type ParameterDefinition interface {
	Name() string
	Type() ParamType
	DefaultValue() Value
	IsValid(v Value) bool
}

// BoolParameter is a boolean attribute; every boolean value is valid.
type BoolParameter struct {
	name string
	def  bool
}

// NewBoolParameter constructs a boolean definition.
func NewBoolParameter(name string, def bool) (*BoolParameter, error) {
	if name == "" {
		return nil, fmt.Errorf("bool parameter: empty name: %w", ErrInvalidConstruction)
	}
	return &BoolParameter{name: name, def: def}, nil
}

func (p *BoolParameter) Name() string        { return p.name }
func (p *BoolParameter) Type() ParamType     { return ParamTypeBool }
func (p *BoolParameter) Default() bool       { return p.def }
func (p *BoolParameter) DefaultValue() Value { return Bool(p.def) }

// IsValid accepts any Bool.
func (p *BoolParameter) IsValid(v Value) bool {
	_, ok := v.(Bool)
	return ok
}

// Number is the set of Go types a numeric parameter can be declared over.
// int and int64 are stored as Int, float64 as Float.
type Number interface {
	int | int64 | float64
}

// Bounds holds optional inclusive limits. A bound only applies when its Has
// flag is set.
type Bounds[T Number] struct {
	Min    T
	Max    T
	HasMin bool
	HasMax bool
}

// Unbounded returns Bounds with neither limit set.
func Unbounded[T Number]() Bounds[T] { return Bounds[T]{} }

// Between returns Bounds limited on both sides.
func Between[T Number](min, max T) Bounds[T] {
	return Bounds[T]{Min: min, Max: max, HasMin: true, HasMax: true}
}

// AtLeast returns Bounds with only a lower limit.
func AtLeast[T Number](min T) Bounds[T] { return Bounds[T]{Min: min, HasMin: true} }

// AtMost returns Bounds with only an upper limit.
func AtMost[T Number](max T) Bounds[T] { return Bounds[T]{Max: max, HasMax: true} }

// Contains reports whether v lies within the bounds. NaN is never contained.
func (b Bounds[T]) Contains(v T) bool {
	if v != v {
		return false
	}
	if b.HasMin && v < b.Min {
		return false
	}
	if b.HasMax && v > b.Max {
		return false
	}
	return true
}

// NumericParameter is a numeric attribute with optional inclusive bounds.
type NumericParameter[T Number] struct {
	name   string
	def    T
	bounds Bounds[T]
}

// NewNumericParameter constructs a numeric definition. The default must lie
// within the bounds and Min must not exceed Max.
func NewNumericParameter[T Number](name string, def T, bounds Bounds[T]) (*NumericParameter[T], error) {
	if name == "" {
		return nil, fmt.Errorf("numeric parameter: empty name: %w", ErrInvalidConstruction)
	}
	if bounds.HasMin && bounds.HasMax && bounds.Min > bounds.Max {
		return nil, fmt.Errorf("numeric parameter %q: min %v exceeds max %v: %w", name, bounds.Min, bounds.Max, ErrInvalidConstruction)
	}
	if !bounds.Contains(def) {
		return nil, fmt.Errorf("numeric parameter %q: default %v outside bounds: %w", name, def, ErrInvalidConstruction)
	}
	return &NumericParameter[T]{name: name, def: def, bounds: bounds}, nil
}

func (p *NumericParameter[T]) Name() string      { return p.name }
func (p *NumericParameter[T]) Type() ParamType   { return numericType[T]() }
func (p *NumericParameter[T]) Default() T        { return p.def }
func (p *NumericParameter[T]) Bounds() Bounds[T] { return p.bounds }

// DefaultValue returns the default wrapped as Int or Float.
func (p *NumericParameter[T]) DefaultValue() Value { return numericValue(p.def) }

// IsValidTyped checks v against the bounds.
func (p *NumericParameter[T]) IsValidTyped(v T) bool { return p.bounds.Contains(v) }

// IsValid accepts Int values for integer parameters and Float values for
// float parameters, subject to the bounds.
func (p *NumericParameter[T]) IsValid(v Value) bool {
	if v == nil || v.Type() != p.Type() {
		return false
	}
	switch x := v.(type) {
	case Int:
		return p.IsValidTyped(T(x))
	case Float:
		return p.IsValidTyped(T(x))
	default:
		return false
	}
}

func numericType[T Number]() ParamType {
	var zero T
	if _, ok := any(zero).(float64); ok {
		return ParamTypeFloat
	}
	return ParamTypeInt
}

func numericValue[T Number](v T) Value {
	switch x := any(v).(type) {
	case int:
		return Int(x)
	case int64:
		return Int(x)
	default:
		return Float(any(v).(float64))
	}
}

// StringParameter is a text attribute with an optional allowed set. An empty
// set allows every string.
type StringParameter struct {
	name    string
	def     string
	allowed []string
}

// NewStringParameter constructs a string definition. With a non-empty allowed
// set the default must be a member.
func NewStringParameter(name, def string, allowed ...string) (*StringParameter, error) {
	if name == "" {
		return nil, fmt.Errorf("string parameter: empty name: %w", ErrInvalidConstruction)
	}
	p := &StringParameter{name: name, def: def, allowed: slices.Clone(allowed)}
	if !p.IsValidTyped(def) {
		return nil, fmt.Errorf("string parameter %q: default %q must be one of the allowed values: %w", name, def, ErrInvalidConstruction)
	}
	return p, nil
}

func (p *StringParameter) Name() string        { return p.name }
func (p *StringParameter) Type() ParamType     { return ParamTypeString }
func (p *StringParameter) Default() string     { return p.def }
func (p *StringParameter) DefaultValue() Value { return String(p.def) }

// Allowed returns a copy of the allowed set.
func (p *StringParameter) Allowed() []string { return slices.Clone(p.allowed) }

// IsValidTyped reports set membership using exact string equality.
func (p *StringParameter) IsValidTyped(s string) bool {
	if len(p.allowed) == 0 {
		return true
	}
	return slices.Contains(p.allowed, s)
}

// IsValid accepts String values that pass IsValidTyped.
func (p *StringParameter) IsValid(v Value) bool {
	s, ok := v.(String)
	return ok && p.IsValidTyped(string(s))
}

// Definitions is an ordered list of parameter definitions shared by a map and
// all of its cells.
type Definitions []ParameterDefinition

// Lookup finds a definition by name.
func (d Definitions) Lookup(name string) (ParameterDefinition, bool) {
	for _, p := range d {
		if p != nil && p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Names lists definition names in declaration order.
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for _, p := range d {
		names = append(names, p.Name())
	}
	return names
}

// Validate rejects nil entries and duplicate names.
func (d Definitions) Validate() error {
	seen := make(map[string]struct{}, len(d))
	for i, p := range d {
		if p == nil {
			return fmt.Errorf("definition %d is nil: %w", i, ErrNilArgument)
		}
		if _, dup := seen[p.Name()]; dup {
			return fmt.Errorf("parameter %q: %w", p.Name(), ErrDuplicateParameter)
		}
		seen[p.Name()] = struct{}{}
	}
	return nil
}
