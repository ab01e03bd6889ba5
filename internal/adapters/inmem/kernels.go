package inmem

import (
	"fmt"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/zerr"
)

const outSocket = "out"

func managedTypes() []Type {
	return []Type{
		{
			Descriptor: domain.Descriptor{
				Type:       "ScriptValue",
				Outputs:    []string{outSocket},
				Params:     []string{"value"},
				Categories: []string{"script", "source"},
			},
			Run: func(_, params map[string]any) (map[string]any, error) {
				v, ok := params["value"]
				if !ok {
					v = 0.0
				}
				return map[string]any{outSocket: v}, nil
			},
		},
		{
			Descriptor: domain.Descriptor{
				Type:       "ScriptScale",
				Inputs:     []string{"in"},
				Outputs:    []string{outSocket},
				Params:     []string{"factor"},
				Categories: []string{"script", "math"},
			},
			Run: func(inputs, params map[string]any) (map[string]any, error) {
				in, err := number(inputs["in"])
				if err != nil {
					return nil, zerr.With(err, "input", "in")
				}
				factor := 1.0
				if raw, ok := params["factor"]; ok {
					if factor, err = number(raw); err != nil {
						return nil, zerr.With(err, "param", "factor")
					}
				}
				return map[string]any{outSocket: in * factor}, nil
			},
		},
		{
			Descriptor: domain.Descriptor{
				Type:       "ScriptFormat",
				Inputs:     []string{"in"},
				Outputs:    []string{outSocket},
				Params:     []string{"format"},
				Categories: []string{"script", "text"},
			},
			Run: func(inputs, params map[string]any) (map[string]any, error) {
				format := "%v"
				if raw, ok := params["format"]; ok {
					s, ok := raw.(string)
					if !ok {
						return nil, zerr.With(zerr.New("format must be a string"), "param", "format")
					}
					format = s
				}
				return map[string]any{outSocket: fmt.Sprintf(format, inputs["in"])}, nil
			},
		},
	}
}

func nativeTypes() []Type {
	binary := func(typeName string, op func(a, b float64) float64) Type {
		return Type{
			Descriptor: domain.Descriptor{
				Type:       typeName,
				Inputs:     []string{"a", "b"},
				Outputs:    []string{outSocket},
				Categories: []string{"math"},
			},
			Run: func(inputs, _ map[string]any) (map[string]any, error) {
				a, err := number(inputs["a"])
				if err != nil {
					return nil, zerr.With(err, "input", "a")
				}
				b, err := number(inputs["b"])
				if err != nil {
					return nil, zerr.With(err, "input", "b")
				}
				return map[string]any{outSocket: op(a, b)}, nil
			},
		}
	}

	return []Type{
		{
			Descriptor: domain.Descriptor{
				Type:       "Number",
				Outputs:    []string{outSocket},
				Params:     []string{"value"},
				Categories: []string{"math", "source"},
			},
			Run: func(_, params map[string]any) (map[string]any, error) {
				v := 0.0
				if raw, ok := params["value"]; ok {
					var err error
					if v, err = number(raw); err != nil {
						return nil, zerr.With(err, "param", "value")
					}
				}
				return map[string]any{outSocket: v}, nil
			},
		},
		binary("Add", func(a, b float64) float64 { return a + b }),
		binary("Multiply", func(a, b float64) float64 { return a * b }),
	}
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, zerr.With(zerr.New("value is not a number"), "type", fmt.Sprintf("%T", v))
	}
}
