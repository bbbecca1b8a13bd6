package ir

// Equal reports structural equality of two trees: same types, same
// scalar values, same sequence order, same keys with the same values.
// Object key order is not significant for equality, only for encoding.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, key := range a.Fields {
			j := b.FieldIndex(key)
			if j == -1 {
				return false
			}
			if !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Float64 != nil && b.Float64 != nil:
		return *a.Float64 == *b.Float64
	case a.Int64 != nil && b.Float64 != nil:
		return float64(*a.Int64) == *b.Float64
	case a.Float64 != nil && b.Int64 != nil:
		return *a.Float64 == float64(*b.Int64)
	}
	return a.Number == b.Number
}
