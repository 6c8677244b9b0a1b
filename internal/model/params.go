package model

import (
	"encoding/json"
	"fmt"

	"mapforge/pkg/core"
)

// Definition builds the core definition described by s.
func (s ParameterRecord) Definition() (core.ParameterDefinition, error) {
	t, err := core.ParseParamType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", s.Name, err)
	}
	switch t {
	case core.ParamTypeBool:
		var def bool
		if err := decodeOptional(s.Default, &def); err != nil {
			return nil, fmt.Errorf("parameter %q default: %w", s.Name, err)
		}
		return definition(core.NewBoolParameter(s.Name, def))
	case core.ParamTypeInt:
		return numericDefinition[int64](s)
	case core.ParamTypeFloat:
		return numericDefinition[float64](s)
	default:
		var def string
		if err := decodeOptional(s.Default, &def); err != nil {
			return nil, fmt.Errorf("parameter %q default: %w", s.Name, err)
		}
		return definition(core.NewStringParameter(s.Name, def, s.Allowed...))
	}
}

func numericDefinition[T int64 | float64](s ParameterRecord) (core.ParameterDefinition, error) {
	var (
		def    T
		bounds core.Bounds[T]
	)
	if err := decodeOptional(s.Default, &def); err != nil {
		return nil, fmt.Errorf("parameter %q default: %w", s.Name, err)
	}
	if len(s.Min) > 0 {
		if err := json.Unmarshal(s.Min, &bounds.Min); err != nil {
			return nil, fmt.Errorf("parameter %q min: %w", s.Name, err)
		}
		bounds.HasMin = true
	}
	if len(s.Max) > 0 {
		if err := json.Unmarshal(s.Max, &bounds.Max); err != nil {
			return nil, fmt.Errorf("parameter %q max: %w", s.Name, err)
		}
		bounds.HasMax = true
	}
	return definition(core.NewNumericParameter(s.Name, def, bounds))
}

// definition drops the concrete type so a failed constructor yields a nil interface.
func definition[P core.ParameterDefinition](p P, err error) (core.ParameterDefinition, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Definitions builds core definitions from a list of records.
func Definitions(records []ParameterRecord) (core.Definitions, error) {
	defs := make(core.Definitions, 0, len(records))
	for _, s := range records {
		d, err := s.Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// RecordOf describes a core definition. Only the definition types of package
// core are supported.
func RecordOf(d core.ParameterDefinition) (ParameterRecord, error) {
	rec := ParameterRecord{Name: d.Name(), Type: string(d.Type())}
	def, err := EncodeValue(d.DefaultValue())
	if err != nil {
		return ParameterRecord{}, err
	}
	rec.Default = def

	switch p := d.(type) {
	case *core.BoolParameter:
	case *core.NumericParameter[int]:
		b := p.Bounds()
		err = setBounds(&rec, b.Min, b.Max, b.HasMin, b.HasMax)
	case *core.NumericParameter[int64]:
		b := p.Bounds()
		err = setBounds(&rec, b.Min, b.Max, b.HasMin, b.HasMax)
	case *core.NumericParameter[float64]:
		b := p.Bounds()
		err = setBounds(&rec, b.Min, b.Max, b.HasMin, b.HasMax)
	case *core.StringParameter:
		rec.Allowed = p.Allowed()
	default:
		return ParameterRecord{}, fmt.Errorf("parameter %q: unsupported definition type %T", d.Name(), d)
	}
	if err != nil {
		return ParameterRecord{}, fmt.Errorf("parameter %q bounds: %w", d.Name(), err)
	}
	return rec, nil
}

func setBounds[T core.Number](rec *ParameterRecord, lo, hi T, hasMin, hasMax bool) error {
	if hasMin {
		raw, err := json.Marshal(lo)
		if err != nil {
			return err
		}
		rec.Min = raw
	}
	if hasMax {
		raw, err := json.Marshal(hi)
		if err != nil {
			return err
		}
		rec.Max = raw
	}
	return nil
}

// EncodeValue marshals v as a bare JSON scalar.
func EncodeValue(v core.Value) (json.RawMessage, error) {
	switch v := v.(type) {
	case core.Bool:
		return json.Marshal(bool(v))
	case core.Int:
		return json.Marshal(int64(v))
	case core.Float:
		return json.Marshal(float64(v))
	case core.String:
		return json.Marshal(string(v))
	default:
		return nil, fmt.Errorf("encode value %v: %w", v, core.ErrInvalidValue)
	}
}

// DecodeValue unmarshals a JSON scalar into a value of type t.
func DecodeValue(t core.ParamType, raw json.RawMessage) (core.Value, error) {
	var err error
	switch t {
	case core.ParamTypeBool:
		var b bool
		if err = json.Unmarshal(raw, &b); err == nil {
			return core.Bool(b), nil
		}
	case core.ParamTypeInt:
		var n int64
		if err = json.Unmarshal(raw, &n); err == nil {
			return core.Int(n), nil
		}
	case core.ParamTypeFloat:
		var f float64
		if err = json.Unmarshal(raw, &f); err == nil {
			return core.Float(f), nil
		}
	case core.ParamTypeString:
		var s string
		if err = json.Unmarshal(raw, &s); err == nil {
			return core.String(s), nil
		}
	default:
		return nil, fmt.Errorf("decode value: unknown type %q: %w", t, core.ErrInvalidValue)
	}
	return nil, fmt.Errorf("decode %s value %s: %v: %w", t, raw, err, core.ErrInvalidValue)
}

func decodeOptional(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
