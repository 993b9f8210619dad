package card

import (
	"net/url"
	"strconv"
)

// Role names a scalable text region of the card.
type Role string

// The fixed set of text roles a size override can target.
const (
	RoleTitle     Role = "title"
	RoleLevel     Role = "level"
	RoleUsername  Role = "username"
	RoleBio       Role = "bio"
	RoleStatLabel Role = "stat_label"
	RoleStatValue Role = "stat_value"
	RoleBarLabel  Role = "bar_label"
)

// Size multipliers outside [MinScale, MaxScale] are discarded, never rejected.
const (
	MinScale = 0.3
	MaxScale = 2.0
)

// baseSizes are the per-role font sizes at multiplier 1.0.
var baseSizes = map[Role]float64{
	RoleTitle:     18,
	RoleLevel:     14,
	RoleUsername:  13,
	RoleBio:       11,
	RoleStatLabel: 12,
	RoleStatValue: 12,
	RoleBarLabel:  10,
}

// sizeParams maps query parameters to the roles they scale.
var sizeParams = map[string]Role{
	"sz_title":      RoleTitle,
	"sz_level":      RoleLevel,
	"sz_username":   RoleUsername,
	"sz_bio":        RoleBio,
	"sz_stat_label": RoleStatLabel,
	"sz_stat_value": RoleStatValue,
	"sz_bar_label":  RoleBarLabel,
}

// Options control card rendering. The zero value renders the default card
// (dark theme, English labels, default font, all sizes at 1.0).
type Options struct {
	Theme string
	Lang  string
	Font  string
	Sizes map[Role]float64
}

// ParseOptions extracts rendering options from a request query string.
// Invalid or out-of-range values fall back to defaults silently; options
// never cause a request to fail.
func ParseOptions(q url.Values) Options {
	opts := Options{
		Theme: ThemeDark,
		Lang:  LangEN,
		Font:  q.Get("font"),
	}
	if q.Get("theme") == ThemeLight {
		opts.Theme = ThemeLight
	}
	if q.Get("lang") == LangJA {
		opts.Lang = LangJA
	}

	for param, role := range sizeParams {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		// NaN fails both comparisons below, so require the in-range form.
		if err != nil || !(v >= MinScale && v <= MaxScale) {
			continue
		}
		if opts.Sizes == nil {
			opts.Sizes = make(map[Role]float64)
		}
		opts.Sizes[role] = v
	}
	return opts
}

// Scale returns the multiplier for a role, defaulting to 1.0.
func (o Options) Scale(role Role) float64 {
	if v, ok := o.Sizes[role]; ok {
		return v
	}
	return 1.0
}

// FontSize returns the rendered size for a role: base size times multiplier.
func (o Options) FontSize(role Role) float64 {
	return baseSizes[role] * o.Scale(role)
}
