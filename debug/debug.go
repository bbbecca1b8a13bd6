// Package debug provides env-gated debug logging for phrasegen.
// Gates are read once at startup from PHRASEGEN_DEBUG_* variables.
package debug

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/phrase-tools/phrasegen/encode"
	"github.com/phrase-tools/phrasegen/ir"
)

type debug struct {
	Load   bool
	Render bool
	Merge  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("PHRASEGEN_DEBUG_LOAD")
	d.Render = boolEnv("PHRASEGEN_DEBUG_RENDER")
	d.Merge = boolEnv("PHRASEGEN_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Render() bool {
	return d.Render
}
func Merge() bool {
	return d.Merge
}

// Node formats an ir tree as compact JSON for log lines.
type Node struct{ *ir.Node }

func (n Node) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n.Node, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", n.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
