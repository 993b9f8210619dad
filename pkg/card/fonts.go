package card

import "sort"

// Font describes one entry of the font registry.
type Font struct {
	Name     string // Display name shown in the preview UI
	Family   string // CSS font-family value
	Category string // "pixel" or "monospace"
}

// DefaultFontKey is the registry entry used when the requested key is
// absent.
const DefaultFontKey = "press-start"

// fonts is the static font registry. Pixel fonts render crisply only near
// their native size; that caveat is surfaced in the preview UI, not
// enforced here.
var fonts = map[string]Font{
	"press-start": {
		Name:     "Press Start 2P",
		Family:   "'Press Start 2P', 'Courier New', monospace",
		Category: "pixel",
	},
	"dotgothic": {
		Name:     "DotGothic16",
		Family:   "'DotGothic16', 'MS Gothic', monospace",
		Category: "pixel",
	},
	"vt323": {
		Name:     "VT323",
		Family:   "'VT323', 'Courier New', monospace",
		Category: "pixel",
	},
	"ibm-plex-mono": {
		Name:     "IBM Plex Mono",
		Family:   "'IBM Plex Mono', 'Consolas', monospace",
		Category: "monospace",
	},
	"courier": {
		Name:     "Courier",
		Family:   "'Courier New', Courier, monospace",
		Category: "monospace",
	},
}

// FontByKey returns the registry entry for a key, falling back to the
// default entry for unknown keys.
func FontByKey(key string) Font {
	if f, ok := fonts[key]; ok {
		return f
	}
	return fonts[DefaultFontKey]
}

// FontKeys returns the registry keys. Used by the preview page to build its
// font selector.
func FontKeys() []string {
	keys := make([]string, 0, len(fonts))
	for k := range fonts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
