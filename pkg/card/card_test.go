package card

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pixelquest/rpgcard/pkg/github"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testRecord() *github.UserRecord {
	return &github.UserRecord{
		Login:       "alice",
		Name:        "Alice Example",
		Bio:         "hi",
		PublicRepos: 3,
		Followers:   10,
		Following:   5,
		HTMLURL:     "https://github.com/alice",
		CreatedAt:   "2020-01-01T00:00:00Z",
	}
}

// requireWellFormed parses the document and fails the test on any XML error.
func requireWellFormed(t *testing.T, svg []byte) {
	t.Helper()
	decoder := xml.NewDecoder(bytes.NewReader(svg))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, svg)
		}
	}
}

func TestRenderCardWellFormed(t *testing.T) {
	tests := []struct {
		name   string
		record *github.UserRecord
	}{
		{"basic", testRecord()},
		{"empty bio", &github.UserRecord{Login: "bob", CreatedAt: "2021-05-01T00:00:00Z"}},
		{"markup in bio", &github.UserRecord{
			Login:     "eve",
			Bio:       `<script>alert("x")</script> & "quotes" <tags>`,
			CreatedAt: "2019-01-01T00:00:00Z",
		}},
		{"all-zero stats", &github.UserRecord{Login: "zero", CreatedAt: "2025-01-01T00:00:00Z"}},
		{"malformed created_at", &github.UserRecord{Login: "odd", CreatedAt: "not-a-date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := renderCard(tt.record, Options{}, testNow)
			requireWellFormed(t, svg)
			if !strings.HasPrefix(string(svg), "<svg") {
				t.Error("output should start with an svg element")
			}
		})
	}
}

func TestRenderCardEscapesUserText(t *testing.T) {
	record := testRecord()
	record.Bio = `<script>alert("pwned")</script>`
	record.Name = `Ada & "Lovelace"`

	svg := string(renderCard(record, Options{}, testNow))
	if strings.Contains(svg, "<script>") {
		t.Error("bio markup must be escaped")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("escaped bio should appear in the output")
	}
	if !strings.Contains(svg, "Ada &amp; &#34;Lovelace&#34;") {
		t.Errorf("display name should be escaped, got:\n%s", svg)
	}
	requireWellFormed(t, []byte(svg))
}

func TestRenderCardThemes(t *testing.T) {
	record := testRecord()

	dark := string(renderCard(record, Options{Theme: ThemeDark}, testNow))
	if !strings.Contains(dark, themes[ThemeDark].Background) {
		t.Error("dark card should use the dark background")
	}

	light := string(renderCard(record, Options{Theme: ThemeLight}, testNow))
	if !strings.Contains(light, themes[ThemeLight].Background) {
		t.Error("light card should use the light background")
	}
	if strings.Contains(light, themes[ThemeDark].Background) {
		t.Error("palettes swap wholesale; no dark colors in a light card")
	}
}

func TestRenderCardLanguages(t *testing.T) {
	record := testRecord()

	en := string(renderCard(record, Options{Lang: LangEN}, testNow))
	if !strings.Contains(en, "FOLLOWERS") {
		t.Error("English card should carry English labels")
	}

	ja := string(renderCard(record, Options{Lang: LangJA}, testNow))
	if !strings.Contains(ja, "フォロワー") {
		t.Error("Japanese card should carry Japanese labels")
	}
	requireWellFormed(t, []byte(ja))
}

func TestRenderCardSizeOverrideScalesLinearly(t *testing.T) {
	record := testRecord()

	for _, scale := range []float64{0.5, 1.0, 1.5, 2.0} {
		opts := Options{Sizes: map[Role]float64{RoleBio: scale}}
		svg := string(renderCard(record, opts, testNow))

		want := formatSize(baseSizes[RoleBio] * scale)
		if !strings.Contains(svg, `font-size="`+want+`"`) {
			t.Errorf("scale %.1f: expected a font-size %s element", scale, want)
		}
	}
}

func TestRenderCardDeterministic(t *testing.T) {
	record := testRecord()
	opts := Options{Theme: ThemeLight, Lang: LangJA, Font: "vt323"}

	a := renderCard(record, opts, testNow)
	b := renderCard(record, opts, testNow)
	if !bytes.Equal(a, b) {
		t.Error("rendering must be deterministic for identical inputs")
	}
}

func TestRenderCardFontFallback(t *testing.T) {
	record := testRecord()
	svg := string(renderCard(record, Options{Font: "no-such-font"}, testNow))
	if !strings.Contains(svg, "Press Start 2P") {
		t.Error("unknown font keys should fall back to the default family")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxChars int
		maxLines int
		want     []string
	}{
		{"empty", "", 20, 2, nil},
		{"single line", "short bio", 20, 2, []string{"short bio"}},
		{"wraps", "one two three four", 9, 3, []string{"one two", "three", "four"}},
		{"truncates", "aaa bbb ccc ddd eee fff", 7, 2, []string{"aaa bbb", "ccc d.."}},
		{"multibyte fits", "こんにちは", 10, 2, []string{"こんにちは"}},
		{"multibyte cut on rune boundary", "こんにちは世界です", 7, 2, []string{"こんにちは.."}},
		{"multibyte wraps by rune count", "東京の開発者 です", 6, 2, []string{"東京の開発者", "です"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.maxChars, tt.maxLines)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// formatSize mirrors the renderer's %.1f font-size formatting.
func formatSize(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
