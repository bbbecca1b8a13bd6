package decode

import (
	"errors"
	"testing"

	"github.com/phrase-tools/phrasegen/ir"
)

func TestDecodeKeyOrder(t *testing.T) {
	y, err := DecodeString(`
zulu: 1
alpha: 2
mike:
  yankee: 3
  bravo: 4`)
	if err != nil {
		t.Fatal(err)
	}
	wantKeys := []string{"zulu", "alpha", "mike"}
	if len(y.Fields) != len(wantKeys) {
		t.Fatalf("got %d fields, want %d", len(y.Fields), len(wantKeys))
	}
	for i, k := range wantKeys {
		if y.Fields[i] != k {
			t.Errorf("field %d: got %q, want %q", i, y.Fields[i], k)
		}
	}
	inner := ir.Get(y, "mike")
	if inner == nil || inner.Type != ir.ObjectType {
		t.Fatalf("mike: got %v", inner)
	}
	if inner.Fields[0] != "yankee" || inner.Fields[1] != "bravo" {
		t.Errorf("nested key order: %v", inner.Fields)
	}
}

func TestDecodeScalars(t *testing.T) {
	y, err := DecodeString(`
s: hello
i: -3
u: 12
f: 1.25
b: true
n: null`)
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(y, "s"); got.Type != ir.StringType || got.String != "hello" {
		t.Errorf("s: %+v", got)
	}
	if got := ir.Get(y, "i"); got.Type != ir.NumberType || got.Int64 == nil || *got.Int64 != -3 {
		t.Errorf("i: %+v", got)
	}
	if got := ir.Get(y, "u"); got.Type != ir.NumberType || got.Int64 == nil || *got.Int64 != 12 {
		t.Errorf("u: %+v", got)
	}
	if got := ir.Get(y, "f"); got.Type != ir.NumberType || got.Float64 == nil || *got.Float64 != 1.25 {
		t.Errorf("f: %+v", got)
	}
	if got := ir.Get(y, "b"); got.Type != ir.BoolType || !got.Bool {
		t.Errorf("b: %+v", got)
	}
	if got := ir.Get(y, "n"); got.Type != ir.NullType {
		t.Errorf("n: %+v", got)
	}
}

func TestDecodeTopLevelScalar(t *testing.T) {
	y, err := DecodeString(`"just a phrase"`)
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.StringType || y.String != "just a phrase" {
		t.Errorf("got %+v", y)
	}
}

func TestDecodeTopLevelSequence(t *testing.T) {
	y, err := DecodeString(`["a", "b"]`)
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ArrayType || len(y.Values) != 2 {
		t.Fatalf("got %+v", y)
	}
	if y.Values[1].String != "b" {
		t.Errorf("got %+v", y.Values[1])
	}
}

func TestDecodeNonStringKeys(t *testing.T) {
	y, err := DecodeString(`
10: ten
true: yes
null: nothing`)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"10", "true", "null"} {
		if y.Fields[i] != want {
			t.Errorf("field %d: got %q, want %q", i, y.Fields[i], want)
		}
	}
}

func TestDecodeParseError(t *testing.T) {
	_, err := DecodeString("a: [unclosed")
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}
