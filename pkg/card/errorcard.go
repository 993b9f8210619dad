package card

import (
	"bytes"
	"fmt"

	"github.com/pixelquest/rpgcard/pkg/errors"
)

// errorMessages are the human-readable lines shown on the degraded card.
// Keyed by failure code; anything unrecognized gets the generic message.
var errorMessages = map[errors.Code][2]string{
	errors.ErrCodeInvalidUsername: {"INVALID USERNAME", "check the spelling and try again"},
	errors.ErrCodeNotFound:        {"USER NOT FOUND", "no such adventurer on GitHub"},
	errors.ErrCodeRateLimited:     {"RATE LIMITED", "the tavern is full, try again later"},
	errors.ErrCodeUpstream:        {"GITHUB UNREACHABLE", "the connection to the realm failed"},
}

var genericErrorMessage = [2]string{"SOMETHING WENT WRONG", "an unexpected error occurred"}

// RenderError renders a minimal themed card for a failure code. It depends
// on no profile data, so it always succeeds and is safe to serve for every
// failure the pipeline can produce.
func RenderError(code errors.Code, themeName string) []byte {
	theme := ThemeByName(themeName)
	font := FontByKey(DefaultFontKey)

	msg, ok := errorMessages[code]
	if !ok {
		msg = genericErrorMessage
	}

	var buf bytes.Buffer
	openCard(&buf, theme, font, msg[0])

	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"130\" text-anchor=\"middle\" font-size=\"20\" fill=\"%s\">%s</text>\n",
		cardWidth/2, theme.Accent, "!")
	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"165\" text-anchor=\"middle\" font-size=\"16\" fill=\"%s\">%s</text>\n",
		cardWidth/2, theme.Text, msg[0])
	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"192\" text-anchor=\"middle\" font-size=\"11\" fill=\"%s\">%s</text>\n",
		cardWidth/2, theme.Muted, msg[1])

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
