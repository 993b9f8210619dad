// Package card renders GitHub profile data as a retro RPG status screen in
// SVG.
//
// RenderCard is a pure function over a validated record and options: the
// same inputs always produce the same markup. RenderError produces a
// degraded card for the failure taxonomy and never touches profile data, so
// it cannot fail in turn. All user-supplied text is XML-escaped before
// embedding.
//
// Themes, languages, and fonts are static lookup tables. Unknown keys fall
// back to the defaults instead of failing; rendering options are a
// best-effort contract, not a validation surface.
package card
