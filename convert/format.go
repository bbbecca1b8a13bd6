package convert

import (
	"errors"
	"fmt"
)

// Format selects the output encoding of a conversion: the JS-embed
// form (`const PHRASES_DATA = ...;`) or bare JSON.
type Format int

const (
	JSFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"js":   JSFormat,
		"j":    JSFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSFormat:
		return []byte("js"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJS() bool   { return f == JSFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSFormat:
		return ".js"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// DefaultOutput returns the conventional destination file for this
// format.
func (f Format) DefaultOutput() string {
	return "phrases" + f.Suffix()
}

func AllFormats() []Format {
	return []Format{JSFormat, JSONFormat}
}
