// Package ir provides the in-memory representation of a phrase catalog.
//
// A catalog document, whatever its serialized form, is a tree of Node
// values: scalars (null, bool, number, string), arrays, and objects.
// Objects keep their keys in source order, so encoding a tree is
// deterministic for a given input document.
//
// The tree works as a recursive tagged union: values are placed in
// fields depending on the node type. For ObjectType nodes Fields[i] is
// the key for Values[i], so both slices always have the same length.
// For ArrayType nodes only Values is populated. Number nodes carry the
// typed value in Int64 or Float64 and may carry the source text in
// Number; when both are present Number is canonical for encoding.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the given key order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object node from a generic map. Go maps carry no
// order, so keys are sorted to keep the result deterministic.
func FromMap(m map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

// Get returns the value of field in y, or nil if y is not an object or
// has no such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the index of field in y's Fields, or -1.
func (y *Node) FieldIndex(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree rooted at y. f is called once before descending
// into a node's values (isPost false) and once after (isPost true). A
// false return from the pre call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
