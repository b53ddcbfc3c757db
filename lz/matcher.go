package lz

import "sync"

// Match describes a back-reference candidate at some cursor position.
type Match struct {
	Length   int
	Distance int
}

// FindMatch searches every distance in 1..min(pos, WindowSize) and returns the longest match
// for data[pos:], capped at MaxMatch and at the remaining input. Among equally long matches the
// smallest distance wins. The second result is false when there is no candidate (pos == 0).
//
// FindMatch is the exhaustive reference search; Matcher returns the same result for every match
// of at least MinMatch bytes and is what Compress uses.
func FindMatch(data []byte, pos int) (Match, bool) {
	if pos <= 0 || pos > len(data) {
		return Match{}, false
	}

	limit := min(MaxMatch, len(data)-pos)
	maxDist := min(pos, WindowSize)
	best := Match{Length: matchLength(data, pos-1, pos, limit), Distance: 1}

	// Ascending distances with a strict comparison keep the nearest of equal lengths.
	for d := 2; d <= maxDist && best.Length < limit; d++ {
		if n := matchLength(data, pos-d, pos, limit); n > best.Length {
			best = Match{Length: n, Distance: d}
		}
	}

	return best, true
}

// matchLength counts equal bytes of data[ref:] and data[pos:] up to limit.
// The two ranges may overlap; ref < pos always holds.
func matchLength(data []byte, ref int, pos int, limit int) int {
	n := 0
	for n < limit && data[ref+n] == data[pos+n] {
		n++
	}

	return n
}

const (
	hashBits = 13
	hashSize = 1 << hashBits
	noPos    = -1
)

// Matcher is a hash-chain index over a buffer.
//
// Every position is chained under the hash of its first MinMatch bytes. A lookup walks the whole
// chain inside the window from the nearest candidate outwards, so the longest match with the
// smallest distance is found exactly as FindMatch would, but only candidates sharing a 3-byte
// prefix are compared.
//
// A Matcher is not safe for concurrent use.
type Matcher struct {
	data     []byte
	head     []int32
	prev     []int32
	inserted int
}

var matcherPool = sync.Pool{
	New: func() any {
		return &Matcher{head: make([]int32, hashSize)}
	},
}

// NewMatcher returns a Matcher for data taken from an internal pool.
// Call Release when done.
func NewMatcher(data []byte) *Matcher {
	m, _ := matcherPool.Get().(*Matcher)
	m.Reset(data)

	return m
}

// Reset prepares the matcher for a new buffer.
func (m *Matcher) Reset(data []byte) {
	m.data = data
	m.inserted = 0

	if len(m.head) != hashSize {
		m.head = make([]int32, hashSize)
	}
	for i := range m.head {
		m.head[i] = noPos
	}

	if cap(m.prev) < len(data) {
		m.prev = make([]int32, len(data))
	} else {
		m.prev = m.prev[:len(data)]
	}
}

// Release returns the matcher to the pool. The matcher must not be used afterwards.
func (m *Matcher) Release() {
	m.data = nil
	matcherPool.Put(m)
}

// Find returns the best match at pos with a length of at least MinMatch.
// The second result is false when no such match exists.
//
// Positions must be queried in non-decreasing order.
func (m *Matcher) Find(pos int) (Match, bool) {
	m.advance(pos)

	data := m.data
	if pos+MinMatch > len(data) {
		return Match{}, false
	}

	limit := min(MaxMatch, len(data)-pos)
	best := Match{}

	for cand := m.head[hash3(data[pos:])]; cand != noPos; cand = m.prev[cand] {
		d := pos - int(cand)
		if d > WindowSize {
			break
		}

		n := matchLength(data, int(cand), pos, limit)
		if n >= MinMatch && n > best.Length {
			best = Match{Length: n, Distance: d}
			if n == limit {
				break
			}
		}
	}

	return best, best.Length >= MinMatch
}

// advance chains every position before pos that still has MinMatch bytes ahead of it.
func (m *Matcher) advance(pos int) {
	last := len(m.data) - MinMatch
	for ; m.inserted < pos && m.inserted <= last; m.inserted++ {
		h := hash3(m.data[m.inserted:])
		m.prev[m.inserted] = m.head[h]
		m.head[h] = int32(m.inserted) //nolint:gosec
	}
	if m.inserted < pos {
		m.inserted = pos
	}
}

func hash3(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16

	return (v * 2654435761) >> (32 - hashBits)
}
