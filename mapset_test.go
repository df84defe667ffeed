package kui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func triggers(ms *MapSet) []string {
	var out []string
	for _, m := range ms.Maps() {
		out = append(out, m.TriggerText())
	}
	return out
}

func TestMapSetRegister(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("jk", "<Esc>"))
	require.NoError(t, ms.Register("abc", "x"))
	require.NoError(t, ms.Register("ab", "y"))
	require.NoError(t, ms.Register("j", "z"))
	require.Equal(t, 4, ms.Len())

	// Sorted by trigger, prefixes first.
	require.Equal(t, []string{"ab", "abc", "j", "jk"}, triggers(ms))
}

func TestMapSetRegisterReplaces(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("jj", "<Esc>"))
	require.NoError(t, ms.Register("jj", "<Up>"))
	require.Equal(t, 1, ms.Len())
	require.Equal(t, []KeyCode{KeyUp}, ms.Maps()[0].Replacement())
}

func TestMapSetRegisterErrors(t *testing.T) {
	ms := NewMapSet()
	require.Error(t, ms.Register("", "x"))
	require.Error(t, ms.Register("x", ""))
	require.Error(t, ms.Register("<Bogus>", "x"))
	require.Error(t, ms.RegisterKeys(nil, []KeyCode{'x'}))
	require.Error(t, ms.RegisterKeys([]KeyCode{0}, []KeyCode{'x'}))
	require.Equal(t, 0, ms.Len())
}

func TestMapSetDeregister(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("a", "1"))
	require.NoError(t, ms.Register("b", "2"))
	require.NoError(t, ms.Register("c", "3"))

	require.NoError(t, ms.Deregister("b"))
	require.Equal(t, []string{"a", "c"}, triggers(ms))

	// The first entry is removable too.
	require.NoError(t, ms.Deregister("a"))
	require.Equal(t, []string{"c"}, triggers(ms))

	require.ErrorIs(t, ms.Deregister("a"), ErrMapNotFound)
	require.ErrorIs(t, ms.Deregister("zz"), ErrMapNotFound)
	require.Error(t, ms.Deregister(""))
}

func TestMappingAccessors(t *testing.T) {
	m, err := NewMapping("jj", "<Esc>")
	require.NoError(t, err)
	require.Equal(t, "jj", m.TriggerText())
	require.Equal(t, "<Esc>", m.ReplacementText())
	require.Equal(t, []KeyCode{'j', 'j'}, m.Trigger())
	require.Equal(t, []KeyCode{KeyEsc}, m.Replacement())
}

func TestKeysCompare(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "ab", -1},
		{"ab", "a", 1},
		{"ab", "ab", 0},
	}
	for _, c := range testCases {
		a, err := DecodeKeys(c.a)
		require.NoError(t, err)
		b, err := DecodeKeys(c.b)
		require.NoError(t, err)
		require.Equal(t, c.expected, keysCompare(a, b), "%q vs %q", c.a, c.b)
	}
}

func feedAll(t *testing.T, ms *MapSet, text string) matchState {
	t.Helper()
	keys, err := DecodeKeys(text)
	require.NoError(t, err)
	ms.reset()
	for i, k := range keys {
		if ms.matchState() != matchStillLooking {
			break
		}
		require.NoError(t, ms.feed(k, i))
	}
	ms.finalize()
	return ms.matchState()
}

func TestMatcherStates(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("abc", "x"))
	require.NoError(t, ms.Register("abd", "y"))

	// Full match.
	require.Equal(t, matchFound, feedAll(t, ms, "abc"))
	require.Equal(t, "abc", ms.matched().TriggerText())

	// Diverging key.
	require.Equal(t, matchNotFound, feedAll(t, ms, "abx"))
	require.Nil(t, ms.matched())

	// Incomplete input stays unresolved until finalize rules it out.
	ms.reset()
	require.NoError(t, ms.feed('a', 0))
	require.NoError(t, ms.feed('b', 1))
	require.Equal(t, matchStillLooking, ms.matchState())
	ms.finalize()
	require.Equal(t, matchNotFound, ms.matchState())
}

func TestMatcherLongestWins(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("a", "1"))
	require.NoError(t, ms.Register("ab", "2"))
	require.NoError(t, ms.Register("abc", "3"))

	// The shorter match is remembered while longer triggers remain
	// possible, and finalize falls back to it.
	ms.reset()
	require.NoError(t, ms.feed('a', 0))
	require.Equal(t, matchStillLooking, ms.matchState())
	require.NoError(t, ms.feed('b', 1))
	require.Equal(t, matchStillLooking, ms.matchState())
	require.NoError(t, ms.feed('x', 2))
	require.Equal(t, matchNotFound, ms.matchState())
	ms.finalize()
	require.Equal(t, matchFound, ms.matchState())
	require.Equal(t, "ab", ms.matched().TriggerText())

	// The full longest trigger resolves without finalize fallback.
	require.Equal(t, matchFound, feedAll(t, ms, "abc"))
	require.Equal(t, "abc", ms.matched().TriggerText())
}

func TestMatcherUniquePrefixResolvesEarly(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("jk", "<Esc>"))
	require.NoError(t, ms.Register("q", "x"))

	ms.reset()
	require.NoError(t, ms.feed('j', 0))
	require.Equal(t, matchStillLooking, ms.matchState())
	require.NoError(t, ms.feed('k', 1))

	// No other trigger extends jk, so the match is final immediately.
	require.Equal(t, matchFound, ms.matchState())
	require.Equal(t, "jk", ms.matched().TriggerText())
}

func TestMatcherFeedErrors(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("a", "b"))

	ms.reset()
	require.ErrorIs(t, ms.feed(0, 0), ErrInvalidKey)
	require.Error(t, ms.feed('a', -1))

	require.NoError(t, ms.feed('x', 0))
	require.Equal(t, matchNotFound, ms.matchState())
	require.Error(t, ms.feed('a', 1))
}

func TestMatcherEmptySet(t *testing.T) {
	ms := NewMapSet()
	ms.reset()
	require.Equal(t, matchNotFound, ms.matchState())
	require.Nil(t, ms.matched())
}

func TestMatcherResetBetweenPasses(t *testing.T) {
	ms := NewMapSet()
	require.NoError(t, ms.Register("ab", "x"))

	require.Equal(t, matchNotFound, feedAll(t, ms, "b"))
	require.Equal(t, matchFound, feedAll(t, ms, "ab"))
	require.Equal(t, matchFound, feedAll(t, ms, "ab"))
}
