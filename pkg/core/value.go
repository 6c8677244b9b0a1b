package core

import (
	"fmt"
	"strconv"
)

// Value is a tagged cell value. Concrete types are Bool, Int, Float and String;
// only types in this package implement it.
type Value interface {
	Type() ParamType
	isValue()
}

// Bool is a boolean cell value.
type Bool bool

// Int is a signed integer cell value.
type Int int64

// Float is a floating-point cell value.
type Float float64

// String is a text cell value.
type String string

// Type returns ParamTypeBool.
func (Bool) Type() ParamType { return ParamTypeBool }

// Type returns ParamTypeInt.
func (Int) Type() ParamType { return ParamTypeInt }

// Type returns ParamTypeFloat.
func (Float) Type() ParamType { return ParamTypeFloat }

// Type returns ParamTypeString.
func (String) Type() ParamType { return ParamTypeString }

func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}

// ParseValue converts textual input into a value of the requested type.
func ParseValue(t ParamType, s string) (Value, error) {
	switch t {
	case ParamTypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("parse %s value %q: %w", t, s, ErrInvalidValue)
		}
		return Bool(b), nil
	case ParamTypeInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s value %q: %w", t, s, ErrInvalidValue)
		}
		return Int(n), nil
	case ParamTypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s value %q: %w", t, s, ErrInvalidValue)
		}
		return Float(f), nil
	case ParamTypeString:
		return String(s), nil
	default:
		return nil, fmt.Errorf("parse value: unknown parameter type %q: %w", t, ErrInvalidValue)
	}
}

// FormatValue renders a value as short text. Booleans render as 1 or 0 and a
// nil value renders as the empty string.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case Bool:
		if v {
			return "1"
		}
		return "0"
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return string(v)
	default:
		return ""
	}
}

// Float64 reports the numeric magnitude of v. Booleans count as 0 or 1; strings
// and nil report ok=false.
func Float64(v Value) (f float64, ok bool) {
	switch v := v.(type) {
	case Bool:
		if v {
			return 1, true
		}
		return 0, true
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	default:
		return 0, false
	}
}
