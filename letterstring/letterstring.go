package letterstring

// MaxLength is the fixed capacity of a LetterString's backing array,
// including room for the terminator. A LetterString can therefore hold at
// most MaxLength-1 live tiles. Racks and words in every supported letter
// distribution fit comfortably under this ceiling.
const MaxLength = 40

// LetterString is a fixed-capacity mutable sequence of single-byte tiles.
// It is the elementary word/rack primitive of the engine: it never
// allocates, never grows past MaxLength, and keeps a zero terminator at
// data[n] so the live range can be handed to C-style consumers.
//
// The zero value is a valid empty string. Assignment copies the whole
// value; two LetterStrings never share storage.
type LetterString struct {
	data [MaxLength]byte
	n    int
}

// FromBytes constructs a LetterString holding a copy of b.
// len(b) must be less than MaxLength.
func FromBytes(b []byte) LetterString {
	var ls LetterString
	ls.Set(b)
	return ls
}

// FromString constructs a LetterString from a literal.
// len(s) must be less than MaxLength.
func FromString(s string) LetterString {
	var ls LetterString
	if len(s) >= MaxLength {
		violation("fromstring", len(s))
		return ls
	}
	copy(ls.data[:], s)
	ls.n = len(s)
	ls.data[ls.n] = 0
	return ls
}

// Repeat constructs a LetterString holding count copies of tile.
// count must be less than MaxLength.
func Repeat(count int, tile byte) LetterString {
	var ls LetterString
	if count < 0 || count >= MaxLength {
		violation("repeat", count)
		return ls
	}
	for i := 0; i < count; i++ {
		ls.data[i] = tile
	}
	ls.n = count
	ls.data[ls.n] = 0
	return ls
}

// Set replaces the contents with a copy of b. len(b) must be less than
// MaxLength. Old bytes past the new terminator are not scrubbed.
func (ls *LetterString) Set(b []byte) {
	if len(b) >= MaxLength {
		violation("set", len(b))
		return
	}
	copy(ls.data[:], b)
	ls.n = len(b)
	ls.data[ls.n] = 0
}

// CopyFrom replaces the contents with other's. A source whose length is
// outside the legal range is treated as corruption, since trusting it would
// propagate the defect.
func (ls *LetterString) CopyFrom(other *LetterString) {
	if !other.valid() {
		violation("copyfrom", other.n)
		return
	}
	copy(ls.data[:], other.data[:other.n])
	ls.n = other.n
	ls.data[ls.n] = 0
}

func (ls *LetterString) valid() bool {
	return ls.n >= 0 && ls.n < MaxLength
}

// Len returns the number of live tiles. The length invariant is validated
// on every call so that a corrupted value cannot leak into indexing.
func (ls LetterString) Len() int {
	if !ls.valid() {
		violation("len", ls.n)
		return 0
	}
	return ls.n
}

// Cap returns the fixed capacity, MaxLength.
func (ls LetterString) Cap() int {
	return MaxLength
}

// Empty reports whether no tiles are held.
func (ls LetterString) Empty() bool {
	return ls.Len() == 0
}

// At returns the tile at index i. The caller guarantees i < Len(); the only
// check is the language's own bounds check on the backing array.
func (ls LetterString) At(i int) byte {
	return ls.data[i]
}

// Bytes returns the live range [0, n). It validates first, since this is
// where a corrupted length would otherwise escape into iteration. The slice
// aliases the backing array and must be treated as read-only by callers that
// want value semantics to hold.
func (ls *LetterString) Bytes() []byte {
	if !ls.valid() {
		violation("bytes", ls.n)
		return nil
	}
	return ls.data[:ls.n]
}

func (ls LetterString) String() string {
	if !ls.valid() {
		violation("string", ls.n)
		return ""
	}
	return string(ls.data[:ls.n])
}

// Push appends one tile. There must be room for the tile and its
// terminator, so the length before the call must be less than MaxLength-1.
func (ls *LetterString) Push(tile byte) {
	if ls.n < 0 || ls.n >= MaxLength-1 {
		violation("push", ls.n)
		return
	}
	ls.data[ls.n] = tile
	ls.n++
	ls.data[ls.n] = 0
}

// Append concatenates other onto ls. The combined length must be less than
// MaxLength.
func (ls *LetterString) Append(other LetterString) {
	if !ls.valid() || !other.valid() || ls.n+other.n >= MaxLength {
		violation("append", ls.n+other.n)
		return
	}
	copy(ls.data[ls.n:], other.data[:other.n])
	ls.n += other.n
	ls.data[ls.n] = 0
}

// Concat returns a new LetterString holding a followed by b.
func Concat(a, b LetterString) LetterString {
	ls := a
	ls.Append(b)
	return ls
}

// Erase removes the tile at pos and shifts everything after it left by one.
func (ls *LetterString) Erase(pos int) {
	if !ls.valid() || pos < 0 || pos >= ls.n {
		violation("erase", ls.n)
		return
	}
	// the copy includes the terminator
	copy(ls.data[pos:], ls.data[pos+1:ls.n+1])
	ls.n--
}

// Pop removes the last tile. The string must be non-empty.
func (ls *LetterString) Pop() {
	if ls.n <= 0 || ls.n >= MaxLength {
		violation("pop", ls.n)
		return
	}
	ls.n--
	ls.data[ls.n] = 0
}

// Clear drops all tiles. Storage past the terminator is not scrubbed.
func (ls *LetterString) Clear() {
	ls.n = 0
	ls.data[0] = 0
}

// Substr returns a new, independently owned LetterString holding the count
// tiles starting at pos. pos+count must not exceed the length.
func (ls LetterString) Substr(pos, count int) LetterString {
	if !ls.valid() || pos < 0 || count < 0 || pos+count > ls.n {
		violation("substr", ls.n)
		return LetterString{}
	}
	return FromBytes(ls.data[pos : pos+count])
}

// Compare does a three-way lexicographic comparison over the live tiles.
// The first differing tile decides; on an equal prefix the shorter string
// sorts first. Returns -1, 0 or 1.
func (ls LetterString) Compare(other LetterString) int {
	n1 := ls.Len()
	n2 := other.Len()
	shared := n1
	if n2 < shared {
		shared = n2
	}
	for i := 0; i < shared; i++ {
		if ls.data[i] < other.data[i] {
			return -1
		} else if ls.data[i] > other.data[i] {
			return 1
		}
	}
	if n1 > n2 {
		return 1
	} else if n2 > n1 {
		return -1
	}
	return 0
}

// Equal reports whether both strings hold the same tile sequence.
func (ls LetterString) Equal(other LetterString) bool {
	return ls.Compare(other) == 0
}

// Less reports whether ls sorts before other.
func (ls LetterString) Less(other LetterString) bool {
	return ls.Compare(other) < 0
}
