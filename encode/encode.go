// Package encode renders ir trees as JSON text.
//
// The encoder writes indented JSON with non-ASCII characters passed
// through literally rather than escaped, so catalog strings read the
// same in the output as in the YAML source. Output bytes are a pure
// function of the tree and the options, which makes runs over an
// unchanged input byte-identical.
//
// Options select the JS-embed framing (EncodeEmbed), compact output
// (EncodeWire), indent width (EncodeIndent) and terminal colors
// (EncodeColors).
package encode

import (
	"io"
	"strings"

	"github.com/phrase-tools/phrasegen/ir"
)

type EncState struct {
	depth, indent int

	wire  bool
	embed string

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.embed != "" {
		if err := writeString(w, "const "+es.embed+" = "); err != nil {
			return err
		}
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.embed != "" {
		return writeString(w, ";")
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeScalar(w, node.Type, "null", es)
	case ir.BoolType:
		if node.Bool {
			return writeScalar(w, node.Type, "true", es)
		}
		return writeScalar(w, node.Type, "false", es)
	case ir.NumberType:
		text, err := numberText(node)
		if err != nil {
			return err
		}
		return writeScalar(w, node.Type, text, es)
	case ir.StringType:
		return writeScalar(w, node.Type, quoteString(node.String), es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return errUnknownType(node.Type)
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, key := range node.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		quoted := quoteString(key)
		if es.Color != nil {
			quoted = es.Color(node.Values[i].Type, FieldColor, quoted)
		}
		if err := writeString(w, quoted); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeString(w, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func writeScalar(w io.Writer, t ir.Type, s string, es *EncState) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	pad := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+pad)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
