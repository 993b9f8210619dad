package card

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pixelquest/rpgcard/pkg/github"
)

// Fixed canvas dimensions. The layout never reflows: oversized text from
// aggressive size multipliers may clip, which is the documented trade-off.
const (
	cardWidth  = 480.0
	cardHeight = 320.0

	contentLeft  = 28.0
	contentRight = 452.0

	bioMaxLines  = 2
	bioCharRatio = 0.62

	barTrackX     = 150.0
	barTrackWidth = 302.0
	barHeight     = 10.0
)

// RenderCard renders a profile record as an RPG status card. It always
// succeeds: the record is already validated and every option falls back to
// a default.
func RenderCard(record *github.UserRecord, opts Options) []byte {
	return renderCard(record, opts, time.Now())
}

// renderCard is the deterministic core, split out so tests can pin the
// reference time the level stat derives from.
func renderCard(record *github.UserRecord, opts Options, now time.Time) []byte {
	theme := ThemeByName(opts.Theme)
	lang := LabelsByLang(opts.Lang)
	font := FontByKey(opts.Font)

	var buf bytes.Buffer
	openCard(&buf, theme, font, record.Login)

	// Header: title centered, separated from the body by the level row.
	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"46\" text-anchor=\"middle\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
		cardWidth/2, opts.FontSize(RoleTitle), theme.Accent, lang.Title)

	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"78\" font-size=\"%.1f\" fill=\"%s\">%s %d</text>\n",
		contentLeft, opts.FontSize(RoleLevel), theme.Accent, lang.Level, Level(record, now))

	name := record.Name
	if name == "" {
		name = record.Login
	}
	fmt.Fprintf(&buf,
		"  <text x=\"%.0f\" y=\"78\" text-anchor=\"end\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
		contentRight, opts.FontSize(RoleUsername), theme.Text, EscapeXML(name))

	renderBio(&buf, record.Bio, opts, theme)

	fmt.Fprintf(&buf,
		"  <line x1=\"%.0f\" y1=\"140\" x2=\"%.0f\" y2=\"140\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		contentLeft, contentRight, theme.Muted)

	renderStats(&buf, record, opts, theme, lang, now)
	renderBars(&buf, record, opts, theme, lang)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// openCard writes the SVG opening tag, background, and the double border
// that gives the card its dialog-box look.
func openCard(buf *bytes.Buffer, theme Theme, font Font, label string) {
	fmt.Fprintf(buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %.0f %.0f\" width=\"%.0f\" height=\"%.0f\" role=\"img\" aria-label=\"%s\" font-family=\"%s\">\n",
		cardWidth, cardHeight, cardWidth, cardHeight, EscapeXML(label), EscapeXML(font.Family))
	fmt.Fprintf(buf,
		"  <rect width=\"%.0f\" height=\"%.0f\" rx=\"6\" fill=\"%s\"/>\n",
		cardWidth, cardHeight, theme.Background)
	fmt.Fprintf(buf,
		"  <rect x=\"6\" y=\"6\" width=\"%.0f\" height=\"%.0f\" fill=\"none\" stroke=\"%s\" stroke-width=\"3\"/>\n",
		cardWidth-12, cardHeight-12, theme.Border)
	fmt.Fprintf(buf,
		"  <rect x=\"12\" y=\"12\" width=\"%.0f\" height=\"%.0f\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		cardWidth-24, cardHeight-24, theme.Border)
}

// renderBio writes the wrapped bio text. An empty bio renders nothing; the
// surrounding layout keeps its fixed positions either way.
func renderBio(buf *bytes.Buffer, bio string, opts Options, theme Theme) {
	if bio == "" {
		return
	}

	size := opts.FontSize(RoleBio)
	maxChars := int((contentRight - contentLeft) / (size * bioCharRatio))
	lines := wrapText(bio, maxChars, bioMaxLines)

	y := 104.0
	for _, line := range lines {
		fmt.Fprintf(buf,
			"  <text x=\"%.0f\" y=\"%.0f\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
			contentLeft, y, size, theme.Muted, EscapeXML(line))
		y += size * 1.5
	}
}

// renderStats writes the numeric stat rows: label left, value right.
func renderStats(buf *bytes.Buffer, record *github.UserRecord, opts Options, theme Theme, lang Labels, now time.Time) {
	rows := []struct {
		label string
		value int
	}{
		{lang.Repos, record.PublicRepos},
		{lang.Followers, record.Followers},
		{lang.Following, record.Following},
		{lang.Years, AccountYears(record, now)},
	}

	y := 164.0
	for _, row := range rows {
		fmt.Fprintf(buf,
			"  <text x=\"%.0f\" y=\"%.0f\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
			contentLeft, y, opts.FontSize(RoleStatLabel), theme.Text, row.label)
		fmt.Fprintf(buf,
			"  <text x=\"%.0f\" y=\"%.0f\" text-anchor=\"end\" font-size=\"%.1f\" fill=\"%s\">%d</text>\n",
			contentRight, y, opts.FontSize(RoleStatValue), theme.Accent, row.value)
		y += 22
	}
}

// renderBars writes the comparative follower/following bars plus the EXP
// bar. The comparative bars share a maximum so their lengths read as
// relative magnitudes.
func renderBars(buf *bytes.Buffer, record *github.UserRecord, opts Options, theme Theme, lang Labels) {
	shared := max(record.Followers, record.Following)

	renderBar(buf, 262, lang.Followers, ratio(record.Followers, shared), opts, theme)
	renderBar(buf, 280, lang.Following, ratio(record.Following, shared), opts, theme)
	renderBar(buf, 298, lang.Exp, float64(ExpPercent(record))/100, opts, theme)
}

// renderBar writes one labeled bar at the given baseline.
func renderBar(buf *bytes.Buffer, y float64, label string, fill float64, opts Options, theme Theme) {
	fmt.Fprintf(buf,
		"  <text x=\"%.0f\" y=\"%.0f\" font-size=\"%.1f\" fill=\"%s\">%s</text>\n",
		contentLeft, y, opts.FontSize(RoleBarLabel), theme.Muted, label)
	fmt.Fprintf(buf,
		"  <rect x=\"%.0f\" y=\"%.0f\" width=\"%.0f\" height=\"%.0f\" fill=\"%s\"/>\n",
		barTrackX, y-barHeight+1, barTrackWidth, barHeight, theme.BarTrack)
	if fill > 0 {
		fmt.Fprintf(buf,
			"  <rect x=\"%.0f\" y=\"%.0f\" width=\"%.1f\" height=\"%.0f\" fill=\"%s\"/>\n",
			barTrackX, y-barHeight+1, barTrackWidth*fill, barHeight, theme.Accent)
	}
}

// ratio scales a value against a shared maximum, returning 0 when the
// maximum itself is zero.
func ratio(v, maxv int) float64 {
	if maxv <= 0 {
		return 0
	}
	return float64(v) / float64(maxv)
}

// wrapText greedily wraps text into at most maxLines lines of maxChars
// characters. Lengths count runes, not bytes, so multibyte text is never
// cut mid-glyph. The final line is cut with ".." when the text does not fit.
func wrapText(s string, maxChars, maxLines int) []string {
	if maxChars < 4 {
		maxChars = 4
	}

	var lines []string
	var current []rune
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		// Hard-cut words that cannot fit on any line.
		if len(runes) > maxChars {
			runes = append(runes[:maxChars-2], '.', '.')
		}
		if len(current) > 0 && len(current)+1+len(runes) > maxChars {
			lines = append(lines, string(current))
			current = current[:0]
			if len(lines) == maxLines {
				break
			}
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}

	if len(lines) == maxLines {
		last := []rune(lines[maxLines-1])
		if len(last) > maxChars-2 {
			last = last[:maxChars-2]
		}
		lines[maxLines-1] = string(last) + ".."
		return lines
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
