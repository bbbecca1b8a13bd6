// Package decode parses YAML phrase catalogs into ir trees.
package decode

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/phrase-tools/phrasegen/ir"

	"github.com/goccy/go-yaml"
)

var ErrParse = errors.New("parse error")

// Decode parses a single YAML document into a tree. Mapping key order
// is preserved from the source.
func Decode(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	y, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return y, nil
}

// DecodeString is Decode on a string input.
func DecodeString(s string) (*ir.Node, error) {
	return Decode([]byte(s))
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for i := range x {
			val, err := fromYAML(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(x[i].Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		return ir.FromAny(v)
	}
}

// keyString renders a YAML mapping key as a string. YAML permits
// non-string keys; the JSON output side does not, so scalar keys are
// rendered with their plain scalar spelling.
func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
