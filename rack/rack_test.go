package rack

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/Jacopo888/quackle/letterstring"
)

// testScores is a small English-style value table for tests.
type testScores map[byte]int

func (t testScores) Score(tile byte) int {
	return t[tile]
}

var englishScores = testScores{
	'?': 0, 'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2,
	'H': 4, 'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4,
	'X': 8, 'Y': 4, 'Z': 10,
}

func TestUnload(t *testing.T) {
	is := is.New(t)
	r := FromString("AEILNN?")
	is.Equal(r.Size(), 7)

	ok := r.Unload(letterstring.FromString("LIE"))
	is.True(ok)
	is.Equal(r.Size(), 4)
	is.Equal(r.AlphaTiles().String(), "?ANN")

	// Z is not held; the rack must be untouched
	ok = r.Unload(letterstring.FromString("Z"))
	is.True(!ok)
	is.Equal(r.AlphaTiles().String(), "?ANN")
}

func TestUnloadAllOrNothing(t *testing.T) {
	is := is.New(t)
	r := FromString("AENPPSW")
	// A and N are held, Z is not; nothing may be removed
	ok := r.Unload(letterstring.FromString("ANZ"))
	is.True(!ok)
	is.Equal(r.Size(), 7)
	is.Equal(r.AlphaTiles().String(), "AENPPSW")
}

func TestUnloadRespectsMultiplicity(t *testing.T) {
	is := is.New(t)
	r := FromString("AENPPSW")
	is.True(r.Unload(letterstring.FromString("PP")))
	is.Equal(r.AlphaTiles().String(), "AENSW")

	// only one N was held, two requested
	r2 := FromString("AEILNN?")
	is.True(r2.Unload(letterstring.FromString("NN")))
	is.True(!r2.Unload(letterstring.FromString("NN")))
	is.Equal(r2.AlphaTiles().String(), "?AEIL")
}

func TestContains(t *testing.T) {
	testCases := []struct {
		rack     string
		used     string
		expected bool
	}{
		{"AEILNN?", "LIE", true},
		{"AEILNN?", "NN", true},
		{"AEILNN?", "NNN", false},
		{"AEILNN?", "Z", false},
		{"AEILNN?", "", true},
		{"", "A", false},
	}
	for _, tc := range testCases {
		r := FromString(tc.rack)
		got := r.Contains(letterstring.FromString(tc.used))
		assert.Equal(t, tc.expected, got, "contains(%v, %v)", tc.rack, tc.used)
		// Contains never mutates
		assert.Equal(t, len(tc.rack), r.Size())
	}
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	r := New()
	is.True(r.Empty())
	r.Load(letterstring.FromString("QUA"))
	r.Load(letterstring.FromString("CK"))
	is.Equal(r.Size(), 5)
	is.Equal(r.String(), "QUACK")
}

func TestScore(t *testing.T) {
	testCases := []struct {
		rack string
		pts  int
	}{
		{"ABCDEFG", 16},
		{"XYZ", 22},
		{"??", 0},
		{"?QWERTY", 21},
		{"RETINAO", 7},
	}
	for _, tc := range testCases {
		r := FromString(tc.rack)
		score := r.Score(englishScores)
		if score != tc.pts {
			t.Errorf("For %v, expected %v, got %v", tc.rack, tc.pts, score)
		}
	}
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	a := FromString("AEILNN?")
	b := FromString("?NNLIEA")
	is.True(a.Equals(b))
	is.True(b.Equals(a))

	b.Unload(letterstring.FromString("N"))
	is.True(!a.Equals(b))
}

func TestShufflePreservesTiles(t *testing.T) {
	is := is.New(t)
	rng := frand.New()
	r := FromString("AEILNN?")
	before := r.AlphaTiles()
	for i := 0; i < 10; i++ {
		r.Shuffle(rng)
		is.Equal(r.Size(), 7)
		is.True(r.AlphaTiles().Equal(before))
	}
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	r := FromString("AEILNN?")
	c := r.Copy()
	c.Unload(letterstring.FromString("LIE"))
	is.Equal(r.Size(), 7)
	is.Equal(c.Size(), 4)

	var d Rack
	d.CopyFrom(r)
	is.True(d.Equals(r))
}
