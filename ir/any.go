package ir

import (
	"fmt"
	"maps"
	"slices"
)

// ToAny converts a tree to generic Go values: map[string]any for
// objects, []any for arrays, and plain scalars otherwise. Key order is
// lost, as Go maps carry none.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, key := range y.Fields {
			res[key] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts generic Go values to a tree. Map keys are sorted
// for determinism. Values outside the JSON value space are rejected.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return &Node{Type: NumberType, Number: fmt.Sprintf("%d", x)}, nil
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		kvs := make([]KeyVal, 0, len(x))
		for _, key := range slices.Sorted(maps.Keys(x)) {
			y, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: key, Val: y})
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a catalog value", v)
	}
}
