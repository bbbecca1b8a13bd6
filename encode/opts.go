package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the indent width. The default is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeEmbed wraps the output in a JS constant declaration,
// `const <name> = <json>;`.
func EncodeEmbed(name string) EncodeOption {
	return func(es *EncState) { es.embed = name }
}

// EncodeWire emits compact single-line output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
