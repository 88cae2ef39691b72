package pairs

import (
	"math/rand"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/core"
)

// Face is one entry of a palette. Two cards share a face when their IDs match;
// the remaining fields are display and sound handles the engine never looks at.
type Face struct {
	ID    string
	Label string
	Glyph string
	Color core.Color
	Sound core.Sound
}

// Card is one slot of the deck. Whether it is face up is owned by the Engine.
type Card struct {
	ID   int
	Face Face
}

// PaletteFromConfig converts a configured palette into faces.
// Unknown color names fall back to the default color.
func PaletteFromConfig(p config.PaletteConfig) []Face {
	faces := make([]Face, 0, len(p.Faces))
	for _, f := range p.Faces {
		color, _ := core.ParseColor(f.Color)
		label := f.Label
		if label == "" {
			label = f.ID
		}
		faces = append(faces, Face{
			ID:    f.ID,
			Label: label,
			Glyph: f.Glyph,
			Color: color,
			Sound: core.Sound(f.Sound),
		})
	}
	return faces
}

// NewDeck deals every palette face twice in random order, numbering the
// cards 0..2P-1 after the shuffle.
func NewDeck(rng *rand.Rand, palette []Face) []Card {
	doubled := make([]Face, 0, 2*len(palette))
	doubled = append(doubled, palette...)
	doubled = append(doubled, palette...)

	shuffled := Shuffle(rng, doubled)

	cards := make([]Card, len(shuffled))
	for i, f := range shuffled {
		cards[i] = Card{ID: i, Face: f}
	}
	return cards
}
