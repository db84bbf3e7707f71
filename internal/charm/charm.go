// Package charm defines the charm catalog and the deterministic
// date-seeded selector. A charm is a short Bulgarian affirmation or
// proverb paired with a decorative icon tag; the catalog is static data
// compiled into the binary, and the selector maps any calendar date to
// one catalog entry so every device independently agrees on "today's
// charm" without a server.
package charm

// Icon is a tag from the closed set of decorative icons a charm can carry.
type Icon string

// The full icon set. Rendering (glyph choice) is a presentation concern;
// the tag is what gets persisted alongside a charm.
const (
	IconSun       Icon = "sun"
	IconMoon      Icon = "moon"
	IconStar      Icon = "star"
	IconHeart     Icon = "heart"
	IconLeaf      Icon = "leaf"
	IconFlower    Icon = "flower"
	IconCoffee    Icon = "coffee"
	IconHorseshoe Icon = "horseshoe"
	IconClover    Icon = "clover"
	IconBird      Icon = "bird"
)

// Icons lists every valid icon tag in declaration order.
var Icons = []Icon{
	IconSun, IconMoon, IconStar, IconHeart, IconLeaf,
	IconFlower, IconCoffee, IconHorseshoe, IconClover, IconBird,
}

// Valid reports whether the icon is one of the known tags.
func (i Icon) Valid() bool {
	for _, known := range Icons {
		if i == known {
			return true
		}
	}
	return false
}

// Record is one charm catalog entry. Records are immutable: the catalog
// is defined once as static data and persisted copies are snapshots by
// value, so later catalog edits never retroactively change history.
type Record struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Icon Icon   `json:"icon"`
}
