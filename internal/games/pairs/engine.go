package pairs

import (
	"math/rand"
	"sort"
)

// Result describes what a FlipCard call did.
// A rejected flip has Accepted == false and every other field zero.
type Result struct {
	Accepted  bool
	Started   bool  // This flip started the game clock
	Matched   *Face // Set when the flip completed a pair
	Mismatch  bool  // Two different faces are now up, waiting to be turned back
	Completed bool  // Every pair has been found
}

// Engine owns the state of one game of pairs.
// All transitions are synchronous and never fail: requests that break a rule
// are ignored and leave the state untouched.
type Engine struct {
	palette []Face
	rng     *rand.Rand

	cards        []Card
	flipped      []int  // Face-up ids waiting to be resolved, at most two
	matched      []bool // Indexed by card id
	matchedCount int
	elapsed      int
	clicks       int
	running      bool
	completed    bool
}

// NewEngine creates an engine dealing from palette and deals the first game.
func NewEngine(palette []Face, rng *rand.Rand) *Engine {
	e := &Engine{
		palette: palette,
		rng:     rng,
	}
	e.Reset()
	return e
}

// Reset deals a fresh shuffled deck and clears all progress.
func (e *Engine) Reset() {
	e.cards = NewDeck(e.rng, e.palette)
	e.flipped = e.flipped[:0]
	e.matched = make([]bool, len(e.cards))
	e.matchedCount = 0
	e.elapsed = 0
	e.clicks = 0
	e.running = false
	e.completed = false
}

// FlipCard turns card id face up.
// Ignored when id does not exist, when two cards are already waiting to be
// resolved, or when the card is already face up.
func (e *Engine) FlipCard(id int) Result {
	if id < 0 || id >= len(e.cards) {
		return Result{}
	}
	if len(e.flipped) == 2 {
		return Result{}
	}
	if e.matched[id] || e.isFlipped(id) {
		return Result{}
	}

	res := Result{Accepted: true}

	e.clicks++
	if !e.running && !e.completed {
		e.running = true
		res.Started = true
	}

	e.flipped = append(e.flipped, id)

	if len(e.flipped) == 2 {
		first, second := e.cards[e.flipped[0]], e.cards[e.flipped[1]]
		if first.Face.ID == second.Face.ID {
			e.matched[first.ID] = true
			e.matched[second.ID] = true
			e.matchedCount += 2
			e.flipped = e.flipped[:0]

			face := first.Face
			res.Matched = &face
		} else {
			res.Mismatch = true
		}
	}

	if e.matchedCount == len(e.cards) {
		e.running = false
		e.completed = true
		res.Completed = true
	}

	return res
}

// Unflip turns every unresolved card face down again.
// Returns false if nothing was face up.
func (e *Engine) Unflip() bool {
	if len(e.flipped) == 0 {
		return false
	}
	e.flipped = e.flipped[:0]
	return true
}

// Tick advances the game clock by one second while the game is running.
func (e *Engine) Tick() bool {
	if !e.running {
		return false
	}
	e.elapsed++
	return true
}

func (e *Engine) isFlipped(id int) bool {
	for _, f := range e.flipped {
		if f == id {
			return true
		}
	}
	return false
}

// Cards returns a copy of the deck in deal order.
func (e *Engine) Cards() []Card {
	out := make([]Card, len(e.cards))
	copy(out, e.cards)
	return out
}

// Card returns the card with the given id.
func (e *Engine) Card(id int) (Card, bool) {
	if id < 0 || id >= len(e.cards) {
		return Card{}, false
	}
	return e.cards[id], true
}

// Len returns the number of cards in the deck.
func (e *Engine) Len() int {
	return len(e.cards)
}

// Flipped returns the unresolved face-up ids in the order they were flipped.
func (e *Engine) Flipped() []int {
	out := make([]int, len(e.flipped))
	copy(out, e.flipped)
	return out
}

// Matched returns the ids of every matched card in ascending order.
func (e *Engine) Matched() []int {
	out := make([]int, 0, e.matchedCount)
	for id, m := range e.matched {
		if m {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// IsMatched reports whether card id belongs to a found pair.
func (e *Engine) IsMatched(id int) bool {
	return id >= 0 && id < len(e.matched) && e.matched[id]
}

// IsFaceUp reports whether card id is currently shown: flipped or matched.
func (e *Engine) IsFaceUp(id int) bool {
	return e.IsMatched(id) || e.isFlipped(id)
}

// ElapsedSeconds returns the game clock.
func (e *Engine) ElapsedSeconds() int { return e.elapsed }

// ClickCount returns the number of accepted flips.
func (e *Engine) ClickCount() int { return e.clicks }

// Running reports whether the game clock is running.
func (e *Engine) Running() bool { return e.running }

// Completed reports whether every pair has been found.
func (e *Engine) Completed() bool { return e.completed }

// PairsFound returns how many pairs have been matched.
func (e *Engine) PairsFound() int { return e.matchedCount / 2 }

// PairsTotal returns how many pairs the deck holds.
func (e *Engine) PairsTotal() int { return len(e.cards) / 2 }
