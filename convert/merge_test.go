package convert

import (
	"testing"

	"github.com/phrase-tools/phrasegen/decode"
	"github.com/phrase-tools/phrasegen/encode"

	jsonpatch "github.com/evanphx/json-patch"
)

type mergeTest struct {
	name    string
	base    string
	overlay string
	want    string
}

var mergeTests = []mergeTest{
	{
		name: "overlay wins",
		base: `
greeting:
  en: Hello
  fr: Bonjour`,
		overlay: `
greeting:
  fr: Salut`,
		want: `{"greeting":{"en":"Hello","fr":"Salut"}}`,
	},
	{
		name: "null deletes",
		base: `
greeting: Hello
farewell: Bye`,
		overlay: `
farewell: null`,
		want: `{"greeting":"Hello"}`,
	},
	{
		name: "new keys append in overlay order",
		base: `
a: 1`,
		overlay: `
z: 26
b: 2`,
		want: `{"a":1,"z":26,"b":2}`,
	},
	{
		name: "arrays replace wholesale",
		base: `
tags: [a, b, c]`,
		overlay: `
tags: [x]`,
		want: `{"tags":["x"]}`,
	},
	{
		name: "scalar replaces object",
		base: `
greeting:
  en: Hello`,
		overlay: `
greeting: hi`,
		want: `{"greeting":"hi"}`,
	},
	{
		name: "non-object overlay replaces document",
		base: `
a: 1`,
		overlay: `
- 1
- 2`,
		want: `[1,2]`,
	},
	{
		name: "nested null inside new key is dropped",
		base: `
a: 1`,
		overlay: `
b:
  keep: 1
  drop: null`,
		want: `{"a":1,"b":{"keep":1}}`,
	},
}

func TestMerge(t *testing.T) {
	for _, tc := range mergeTests {
		t.Run(tc.name, func(t *testing.T) {
			base, err := decode.DecodeString(tc.base)
			if err != nil {
				t.Fatal(err)
			}
			overlay, err := decode.DecodeString(tc.overlay)
			if err != nil {
				t.Fatal(err)
			}
			got := Merge(base, overlay)
			gotJSON := encode.MustString(got, encode.EncodeWire(true))
			if gotJSON != tc.want {
				t.Errorf("got %s, want %s", gotJSON, tc.want)
			}
			// inputs must not be mutated
			rebase, _ := decode.DecodeString(tc.base)
			baseJSON := encode.MustString(base, encode.EncodeWire(true))
			if baseJSON != encode.MustString(rebase, encode.EncodeWire(true)) {
				t.Errorf("base mutated: %s", baseJSON)
			}
		})
	}
}

// Merge follows RFC 7386, so its result must agree structurally with
// the reference merge-patch implementation.
func TestMergeAgreesWithMergePatch(t *testing.T) {
	for _, tc := range mergeTests {
		t.Run(tc.name, func(t *testing.T) {
			base, err := decode.DecodeString(tc.base)
			if err != nil {
				t.Fatal(err)
			}
			overlay, err := decode.DecodeString(tc.overlay)
			if err != nil {
				t.Fatal(err)
			}
			baseJSON := []byte(encode.MustString(base, encode.EncodeWire(true)))
			overlayJSON := []byte(encode.MustString(overlay, encode.EncodeWire(true)))
			ref, err := jsonpatch.MergePatch(baseJSON, overlayJSON)
			if err != nil {
				t.Fatal(err)
			}
			got := []byte(encode.MustString(Merge(base, overlay), encode.EncodeWire(true)))
			if !jsonpatch.Equal(got, ref) {
				t.Errorf("got %s, reference %s", got, ref)
			}
		})
	}
}
