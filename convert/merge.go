package convert

import (
	"github.com/phrase-tools/phrasegen/debug"
	"github.com/phrase-tools/phrasegen/ir"
)

// Merge applies overlay to base with RFC 7386 merge-patch semantics,
// preserving key order: when both sides of a key are objects the merge
// recurses, a null overlay value deletes the key, anything else
// replaces it. Keys new to the overlay are appended in overlay order.
// Neither input is mutated.
func Merge(base, overlay *ir.Node) *ir.Node {
	if overlay == nil {
		return base.Clone()
	}
	if overlay.Type != ir.ObjectType {
		return overlay.Clone()
	}
	var kvs []ir.KeyVal
	if base != nil && base.Type == ir.ObjectType {
		kvs = make([]ir.KeyVal, 0, len(base.Fields))
		for i, key := range base.Fields {
			j := overlay.FieldIndex(key)
			if j == -1 {
				kvs = append(kvs, ir.KeyVal{Key: key, Val: base.Values[i].Clone()})
				continue
			}
			over := overlay.Values[j]
			if over.Type == ir.NullType {
				if debug.Merge() {
					debug.Logf("merge: delete %q\n", key)
				}
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: Merge(base.Values[i], over)})
		}
	}
	seen := func(key string) bool {
		for i := range kvs {
			if kvs[i].Key == key {
				return true
			}
		}
		return false
	}
	for i, key := range overlay.Fields {
		if overlay.Values[i].Type == ir.NullType || seen(key) {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: Merge(nil, overlay.Values[i])})
	}
	return ir.FromKeyVals(kvs)
}
