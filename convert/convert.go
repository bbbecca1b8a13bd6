// Package convert turns YAML phrase catalogs into their serialized
// output forms.
//
// A conversion is one parse of the input catalog followed by one
// rendering pass: no mutation of the loaded tree, no intermediate
// state. Rerunning a conversion over an unchanged input produces
// byte-identical output.
package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/phrase-tools/phrasegen/debug"
	"github.com/phrase-tools/phrasegen/decode"
	"github.com/phrase-tools/phrasegen/encode"
	"github.com/phrase-tools/phrasegen/ir"
)

const (
	// DefaultInput is the catalog path relative to the working
	// directory.
	DefaultInput = "phrases.yaml"
	// EmbedConst is the constant name in the JS-embed form.
	EmbedConst = "PHRASES_DATA"
)

// Config describes a single conversion.
type Config struct {
	Mode   Format
	Input  string // defaults to DefaultInput
	Output string // defaults to Mode.DefaultOutput()
}

func (cfg *Config) InputPath() string {
	if cfg.Input != "" {
		return cfg.Input
	}
	return DefaultInput
}

func (cfg *Config) OutputPath() string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return cfg.Mode.DefaultOutput()
}

// Load reads and parses the catalog at path. A missing or unreadable
// file wraps ErrNotFound; malformed YAML wraps decode.ErrParse.
func Load(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}
	y, err := decode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	if debug.Load() {
		debug.Logf("loaded %s: %s\n", path, debug.Node{Node: y})
	}
	return y, nil
}

// Render encodes a tree in the given output format.
func Render(y *ir.Node, mode Format) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{}
	if mode.IsJS() {
		opts = append(opts, encode.EncodeEmbed(EmbedConst))
	}
	if err := encode.Encode(y, buf, opts...); err != nil {
		return nil, fmt.Errorf("could not render %s form: %w", mode, err)
	}
	return buf.Bytes(), nil
}

// Run performs a whole conversion: load the input, render it, and
// overwrite the destination file.
func Run(cfg *Config) error {
	y, err := Load(cfg.InputPath())
	if err != nil {
		return err
	}
	d, err := Render(y, cfg.Mode)
	if err != nil {
		return err
	}
	if debug.Render() {
		debug.Logf("rendered %s form, %d bytes\n", cfg.Mode, len(d))
	}
	return WriteFile(cfg.OutputPath(), d)
}

// WriteFile overwrites path with d in full. The file handle is
// released on every exit path; failures wrap ErrWrite.
func WriteFile(path string, d []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %q: %w", ErrWrite, path, cerr)
		}
	}()
	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWrite, path, err)
	}
	return nil
}
