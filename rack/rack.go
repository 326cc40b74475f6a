package rack

import (
	"lukechampine.com/frand"

	"github.com/Jacopo888/quackle/letterstring"
)

// ScoreTable supplies the point value of a single tile. The letter
// distribution in play implements it; this package does not know about
// scoring tables itself.
type ScoreTable interface {
	Score(tile byte) int
}

// Rack holds a player's current tiles as an unordered multiset. It owns
// exactly one LetterString; nothing else aliases it.
type Rack struct {
	tiles letterstring.LetterString
}

// New creates an empty rack.
func New() *Rack {
	return &Rack{}
}

// FromString creates a rack holding the given tiles, e.g. "AEILNN?".
func FromString(tiles string) *Rack {
	return &Rack{tiles: letterstring.FromString(tiles)}
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	return &Rack{tiles: r.tiles}
}

func (r *Rack) CopyFrom(other *Rack) {
	r.tiles.CopyFrom(&other.tiles)
}

// SetTiles replaces the rack's holdings.
func (r *Rack) SetTiles(tiles letterstring.LetterString) {
	r.tiles = tiles
}

// Tiles returns the rack's holdings in their current order.
func (r *Rack) Tiles() letterstring.LetterString {
	return r.tiles
}

// AlphaTiles returns the rack's holdings in sorted order.
func (r *Rack) AlphaTiles() letterstring.LetterString {
	sorted := r.tiles
	b := sorted.Bytes()
	// insertion sort in place. This should be fast enough for small racks.
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && b[j-1] > b[j]; j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
	return sorted
}

// Size returns the number of tiles on the rack.
func (r *Rack) Size() int {
	return r.tiles.Len()
}

// Empty reports whether no tiles are on the rack.
func (r *Rack) Empty() bool {
	return r.tiles.Empty()
}

// Equals reports whether both racks hold the same multiset of tiles,
// regardless of order.
func (r *Rack) Equals(other *Rack) bool {
	return r.AlphaTiles().Equal(other.AlphaTiles())
}

// Load adds tiles to the rack.
func (r *Rack) Load(tiles letterstring.LetterString) {
	r.tiles.Append(tiles)
}

// Unload removes, for each tile in used, one matching occurrence from the
// rack. It mutates the rack only if every requested tile was found;
// otherwise it returns false and the rack is unchanged. A missing tile is a
// normal outcome, not an error.
func (r *Rack) Unload(used letterstring.LetterString) bool {
	remaining := r.tiles
	for _, tile := range used.Bytes() {
		found := false
		for i := 0; i < remaining.Len(); i++ {
			if remaining.At(i) == tile {
				remaining.Erase(i)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	r.tiles = remaining
	return true
}

// Contains reports whether the rack holds every tile in used, counting
// multiplicity. Nonmutating version of Unload.
func (r *Rack) Contains(used letterstring.LetterString) bool {
	scratch := r.Copy()
	return scratch.Unload(used)
}

// Score sums the supplied table over the held tiles.
func (r *Rack) Score(table ScoreTable) int {
	score := 0
	for _, tile := range r.tiles.Bytes() {
		score += table.Score(tile)
	}
	return score
}

// Shuffle randomly permutes the held tiles using the supplied source.
func (r *Rack) Shuffle(rng *frand.RNG) {
	b := r.tiles.Bytes()
	rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
}

// String returns the rack's tiles as entered. Fancier rendering belongs to
// the display layer.
func (r *Rack) String() string {
	return r.tiles.String()
}
