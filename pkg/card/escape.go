package card

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes a string for safe embedding in SVG text content and
// attribute values. Every piece of user-supplied text goes through here
// before it reaches the markup.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
