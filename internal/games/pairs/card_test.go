package pairs

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/core"
)

func testPalette(ids ...string) []Face {
	faces := make([]Face, len(ids))
	for i, id := range ids {
		faces[i] = Face{ID: id, Label: id, Sound: core.Sound("sounds/" + id + ".mp3")}
	}
	return faces
}

func TestNewDeckHasEveryFaceTwice(t *testing.T) {
	palette := testPalette("cat", "cow", "chicken", "dog", "duck", "horse", "sheep", "elephant")

	for seed := int64(1); seed <= 20; seed++ {
		deck := NewDeck(rand.New(rand.NewSource(seed)), palette)

		if len(deck) != 2*len(palette) {
			t.Fatalf("seed %d: deck has %d cards, expected %d", seed, len(deck), 2*len(palette))
		}

		counts := make(map[string]int)
		for i, c := range deck {
			if c.ID != i {
				t.Errorf("seed %d: card at %d has id %d", seed, i, c.ID)
			}
			counts[c.Face.ID]++
		}
		for _, f := range palette {
			if counts[f.ID] != 2 {
				t.Errorf("seed %d: face %s appears %d times", seed, f.ID, counts[f.ID])
			}
		}
	}
}

func TestPaletteFromConfig(t *testing.T) {
	faces := PaletteFromConfig(config.PaletteConfig{
		Faces: []config.FaceConfig{
			{ID: "cat", Label: "CAT", Glyph: "=^.^=", Color: "orange", Sound: "sounds/cat.mp3"},
			{ID: "ghost", Color: "invisible"},
		},
	})

	if len(faces) != 2 {
		t.Fatalf("got %d faces, expected 2", len(faces))
	}

	cat := faces[0]
	if cat.ID != "cat" || cat.Label != "CAT" || cat.Glyph != "=^.^=" {
		t.Errorf("cat = %+v", cat)
	}
	if cat.Color != core.ColorOrange {
		t.Errorf("cat color = %d, expected orange", cat.Color)
	}
	if cat.Sound != "sounds/cat.mp3" {
		t.Errorf("cat sound = %q", cat.Sound)
	}

	ghost := faces[1]
	if ghost.Label != "ghost" {
		t.Errorf("missing label should fall back to id, got %q", ghost.Label)
	}
	if ghost.Color != core.ColorDefault {
		t.Errorf("unknown color should fall back to default, got %d", ghost.Color)
	}
}
