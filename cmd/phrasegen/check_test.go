package main

import (
	"testing"

	"github.com/phrase-tools/phrasegen/convert"
)

func TestStripEmbed(t *testing.T) {
	d, ok := stripEmbed([]byte(`const PHRASES_DATA = {"a": 1};`))
	if !ok || string(d) != `{"a": 1}` {
		t.Errorf("got %q, %v", d, ok)
	}
	if _, ok := stripEmbed([]byte(`{"a": 1}`)); ok {
		t.Errorf("bare JSON accepted as embed form")
	}
	if _, ok := stripEmbed([]byte(`const OTHER = {"a": 1};`)); ok {
		t.Errorf("foreign constant accepted as embed form")
	}
}

func TestStructurallyEqual(t *testing.T) {
	cfg := &CheckConfig{Mode: convert.JSONFormat}
	if !structurallyEqual(cfg, []byte("{\"a\": 1}"), []byte("{\n  \"a\": 1\n}")) {
		t.Errorf("formatting-only drift reported as content drift")
	}
	if structurallyEqual(cfg, []byte(`{"a": 1}`), []byte(`{"a": 2}`)) {
		t.Errorf("content drift reported as formatting drift")
	}
	cfg = &CheckConfig{Mode: convert.JSFormat}
	if !structurallyEqual(cfg,
		[]byte(`const PHRASES_DATA = {"a":1};`),
		[]byte("const PHRASES_DATA = {\n  \"a\": 1\n};")) {
		t.Errorf("js formatting drift reported as content drift")
	}
	if structurallyEqual(cfg, []byte(`{"a":1}`), []byte(`const PHRASES_DATA = {"a":1};`)) {
		t.Errorf("missing embed framing reported as formatting drift")
	}
}
