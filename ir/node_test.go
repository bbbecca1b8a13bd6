package ir

import (
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if y.Fields[0] != "z" || y.Fields[1] != "a" {
		t.Errorf("order not preserved: %v", y.Fields)
	}
}

func TestFromMapSorted(t *testing.T) {
	y := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, k := range want {
		if y.Fields[i] != k {
			t.Errorf("field %d: got %q, want %q", i, y.Fields[i], k)
		}
	}
}

func TestGet(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "en", Val: FromString("Hello")},
	})
	if got := Get(y, "en"); got == nil || got.String != "Hello" {
		t.Errorf("got %+v", got)
	}
	if got := Get(y, "fr"); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
	if got := Get(FromString("x"), "en"); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "list", Val: FromSlice([]*Node{FromInt(1), FromInt(2)})},
	})
	c := y.Clone()
	c.Fields[0] = "other"
	c.Values[0].Values[0] = FromInt(9)
	if y.Fields[0] != "list" {
		t.Errorf("clone shares Fields")
	}
	if *y.Values[0].Values[0].Int64 != 1 {
		t.Errorf("clone shares Values")
	}
	if !Equal(y, y.Clone()) {
		t.Errorf("clone not equal to original")
	}
}

func TestVisit(t *testing.T) {
	y := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2), FromInt(3)}),
	})
	count := 0
	err := y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}

func TestToAnyFromAnyRoundTrip(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "greeting", Val: FromString("café")},
		{Key: "count", Val: FromInt(3)},
		{Key: "ratio", Val: FromFloat(0.5)},
		{Key: "on", Val: FromBool(true)},
		{Key: "none", Val: Null()},
		{Key: "list", Val: FromSlice([]*Node{FromString("a"), FromString("b")})},
	})
	back, err := FromAny(ToAny(y))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(y, back) {
		t.Errorf("round trip changed the tree")
	}
}

func TestFromAnyRejectsForeignTypes(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Errorf("expected error for struct value")
	}
	if _, err := FromAny([]any{make(chan int)}); err == nil {
		t.Errorf("expected error for channel element")
	}
}
