package tui

import "github.com/LISSConsulting/LISSTech.Kysmet/internal/charm"

// iconGlyphs maps charm icon tags to their terminal glyphs.
var iconGlyphs = map[charm.Icon]string{
	charm.IconSun:       "☀️",
	charm.IconMoon:      "🌙",
	charm.IconStar:      "⭐",
	charm.IconHeart:     "❤️",
	charm.IconLeaf:      "🍃",
	charm.IconFlower:    "🌸",
	charm.IconCoffee:    "☕",
	charm.IconHorseshoe: "🧿",
	charm.IconClover:    "🍀",
	charm.IconBird:      "🐦",
}

// IconGlyph returns the terminal glyph for an icon tag, or a generic
// sparkle for unknown tags (old history entries may carry icons removed
// from the set).
func IconGlyph(icon charm.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "✨"
}
