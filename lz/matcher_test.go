package lz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindMatch_NoCandidate(t *testing.T) {
	_, ok := FindMatch([]byte{1, 2, 3}, 0)
	require.False(t, ok)

	_, ok = FindMatch(nil, 0)
	require.False(t, ok)
}

func TestFindMatch_PrefersNearestOnTie(t *testing.T) {
	// "abc" appears at 0 and 4; the cursor at 8 matches both for 3 bytes.
	data := []byte("abcXabcYabc")

	match, ok := FindMatch(data, 8)
	require.True(t, ok)
	require.Equal(t, Match{Length: 3, Distance: 4}, match)
}

func TestFindMatch_PrefersLongest(t *testing.T) {
	// "abcd" at 0 is longer than "abc" at 5.
	data := []byte("abcdXabcYabcd")

	match, ok := FindMatch(data, 9)
	require.True(t, ok)
	require.Equal(t, Match{Length: 4, Distance: 9}, match)
}

func TestFindMatch_CapsLength(t *testing.T) {
	data := make([]byte, 1000)

	match, ok := FindMatch(data, 1)
	require.True(t, ok)
	require.Equal(t, Match{Length: MaxMatch, Distance: 1}, match)

	match, ok = FindMatch(data, 990)
	require.True(t, ok)
	require.Equal(t, Match{Length: 10, Distance: 1}, match)
}

func TestMatcher_Find(t *testing.T) {
	data := []byte("abcXabcYabc")
	m := NewMatcher(data)
	defer m.Release()

	for pos := range 8 {
		_, ok := m.Find(pos)
		if pos == 4 {
			require.True(t, ok)
		}
	}

	match, ok := m.Find(8)
	require.True(t, ok)
	require.Equal(t, Match{Length: 3, Distance: 4}, match)
}

func TestMatcher_IgnoresShortMatches(t *testing.T) {
	data := []byte{1, 2, 9, 1, 2, 8}
	m := NewMatcher(data)
	defer m.Release()

	for pos := range data {
		_, ok := m.Find(pos)
		require.False(t, ok, "pos %d", pos)
	}
}

func TestMatcher_AgreesWithExhaustiveSearch(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		stride int
	}{
		{"binary alphabet", randomBytes(11, 3000, 2), 1},
		{"small alphabet", randomBytes(12, 3000, 4), 1},
		{"wide alphabet", randomBytes(13, 3000, 64), 1},
		{"periodic", bytes.Repeat([]byte{0x30, 0x02, 0x9A, 0x06, 0x30, 0x02, 0x30, 0x02, 0x94, 0x11}, 300), 1},
		{"beyond window", randomBytes(14, WindowSize+2000, 3), 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.data)
			defer m.Release()

			for pos := range tt.data {
				got, ok := m.Find(pos)
				if pos%tt.stride != 0 {
					continue
				}

				want, _ := FindMatch(tt.data, pos)
				if want.Length < MinMatch {
					require.False(t, ok, "pos %d", pos)
					continue
				}

				require.True(t, ok, "pos %d", pos)
				require.Equal(t, want, got, "pos %d", pos)
			}
		})
	}
}

func TestMatcher_Reuse(t *testing.T) {
	first := NewMatcher(bytes.Repeat([]byte{7}, 50))
	_, ok := first.Find(10)
	require.True(t, ok)
	first.Release()

	second := NewMatcher([]byte{1, 2, 3, 4, 5, 6})
	defer second.Release()
	for pos := range 6 {
		_, ok := second.Find(pos)
		require.False(t, ok)
	}
}
