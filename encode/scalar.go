package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phrase-tools/phrasegen/ir"
)

func errUnknownType(t ir.Type) error {
	return fmt.Errorf("%w: unknown node type %s", ErrEncoding, t)
}

// numberText renders a number node as a JSON number. The source text
// in Number wins when the node carries no typed value.
func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v has no JSON representation", ErrEncoding, f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case node.Number != "":
		return node.Number, nil
	}
	return "", fmt.Errorf("%w: number node without a value", ErrEncoding)
}

// quoteString renders s as a JSON string. Only the characters JSON
// requires escaping for are escaped; non-ASCII text passes through
// literally.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(fmt.Sprintf(`\u%04x`, c))
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
