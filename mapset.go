package kui

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMapNotFound is returned by Deregister when no mapping has the
// given trigger.
var ErrMapNotFound = errors.New("kui: mapping not found")

// ErrInvalidKey is returned when a key code outside the valid alphabet
// reaches the matcher.
var ErrInvalidKey = errors.New("kui: invalid key code")

// Mapping is one trigger to replacement rewrite rule. Both sequences
// are kept in decoded form along with the original texts.
type Mapping struct {
	triggerText     string
	replacementText string
	trigger         []KeyCode
	replacement     []KeyCode
}

// NewMapping decodes trigger and replacement and returns the mapping.
// Both texts must decode to at least one key.
func NewMapping(trigger, replacement string) (*Mapping, error) {
	t, err := DecodeKeys(trigger)
	if err != nil {
		return nil, fmt.Errorf("trigger %q: %w", trigger, err)
	}
	r, err := DecodeKeys(replacement)
	if err != nil {
		return nil, fmt.Errorf("replacement %q: %w", replacement, err)
	}
	return &Mapping{
		triggerText:     trigger,
		replacementText: replacement,
		trigger:         t,
		replacement:     r,
	}, nil
}

func newMappingKeys(trigger, replacement []KeyCode) *Mapping {
	return &Mapping{
		triggerText:     EncodeKeys(trigger),
		replacementText: EncodeKeys(replacement),
		trigger:         trigger,
		replacement:     replacement,
	}
}

// Trigger returns the decoded trigger sequence.
func (m *Mapping) Trigger() []KeyCode { return m.trigger }

// Replacement returns the decoded replacement sequence.
func (m *Mapping) Replacement() []KeyCode { return m.replacement }

// TriggerText returns the trigger as originally written.
func (m *Mapping) TriggerText() string { return m.triggerText }

// ReplacementText returns the replacement as originally written.
func (m *Mapping) ReplacementText() string { return m.replacementText }

func (m *Mapping) String() string {
	return fmt.Sprintf("%s -> %s", m.triggerText, m.replacementText)
}

// keysCompare orders key sequences lexicographically. A sequence that
// is a prefix of another sorts first.
func keysCompare(a, b []KeyCode) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// keysCompareN compares the first n positions of a and b. A position
// past the end of a sequence compares as zero, so a shorter sequence
// orders before any extension of it.
func keysCompareN(a, b []KeyCode, n int) int {
	for i := 0; i < n; i++ {
		var ka, kb KeyCode
		if i < len(a) {
			ka = a[i]
		}
		if i < len(b) {
			kb = b[i]
		}
		if ka != kb {
			if ka < kb {
				return -1
			}
			return 1
		}
		if ka == 0 {
			return 0
		}
	}
	return 0
}

type matchState int

const (
	matchStillLooking matchState = iota
	matchFound
	matchNotFound
)

func (s matchState) String() string {
	switch s {
	case matchStillLooking:
		return "still-looking"
	case matchFound:
		return "found"
	case matchNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("matchState(%d)", int(s))
	}
}

// MapSet holds mappings sorted by trigger and matches input against
// them one key at a time. The container operations (Register,
// Deregister, Maps) are the public surface; the matcher is driven
// internally during key lookup.
type MapSet struct {
	maps []*Mapping

	// Matcher pass state, valid between reset and finalize.
	cursor   int
	state    matchState
	foundIdx int
}

// NewMapSet returns an empty map set.
func NewMapSet() *MapSet {
	s := &MapSet{foundIdx: -1}
	s.reset()
	return s
}

// Len returns the number of registered mappings.
func (s *MapSet) Len() int { return len(s.maps) }

// Maps returns the mappings in trigger order. The slice is shared;
// callers must not modify it.
func (s *MapSet) Maps() []*Mapping { return s.maps }

// Register adds a mapping. A mapping with an identical trigger is
// replaced.
func (s *MapSet) Register(trigger, replacement string) error {
	m, err := NewMapping(trigger, replacement)
	if err != nil {
		return err
	}
	s.insert(m)
	return nil
}

// RegisterKeys is Register for already-decoded sequences.
func (s *MapSet) RegisterKeys(trigger, replacement []KeyCode) error {
	if len(trigger) == 0 || len(replacement) == 0 {
		return fmt.Errorf("empty key sequence")
	}
	for _, seq := range [][]KeyCode{trigger, replacement} {
		for _, k := range seq {
			if k <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidKey, int(k))
			}
		}
	}
	s.insert(newMappingKeys(trigger, replacement))
	return nil
}

func (s *MapSet) insert(m *Mapping) {
	i := sort.Search(len(s.maps), func(i int) bool {
		return keysCompare(s.maps[i].trigger, m.trigger) >= 0
	})
	if i < len(s.maps) && keysCompare(s.maps[i].trigger, m.trigger) == 0 {
		s.maps[i] = m
		return
	}
	s.maps = append(s.maps, nil)
	copy(s.maps[i+1:], s.maps[i:])
	s.maps[i] = m
}

// Deregister removes the mapping whose trigger text decodes to the
// given sequence. It returns ErrMapNotFound when no such mapping
// exists.
func (s *MapSet) Deregister(trigger string) error {
	t, err := DecodeKeys(trigger)
	if err != nil {
		return fmt.Errorf("trigger %q: %w", trigger, err)
	}
	i := sort.Search(len(s.maps), func(i int) bool {
		return keysCompare(s.maps[i].trigger, t) >= 0
	})
	if i >= len(s.maps) || keysCompare(s.maps[i].trigger, t) != 0 {
		return ErrMapNotFound
	}
	s.maps = append(s.maps[:i], s.maps[i+1:]...)
	return nil
}

// reset starts a new matching pass over all mappings.
func (s *MapSet) reset() {
	s.cursor = 0
	s.foundIdx = -1
	if len(s.maps) == 0 {
		s.state = matchNotFound
	} else {
		s.state = matchStillLooking
	}
}

// matchState returns the state of the current pass.
func (s *MapSet) matchState() matchState { return s.state }

// matched returns the mapping found by the current pass, or nil.
func (s *MapSet) matched() *Mapping {
	if s.state != matchFound || s.cursor >= len(s.maps) {
		return nil
	}
	return s.maps[s.cursor]
}

// feed advances the pass with the key observed at the given lookahead
// position. The cursor rides the first mapping whose trigger still
// agrees with everything fed so far; triggers are sorted, so candidates
// that fall behind are skipped and the pass ends as soon as the cursor
// leaves the block of triggers sharing the fed prefix.
func (s *MapSet) feed(key KeyCode, position int) error {
	if s.state != matchStillLooking {
		return fmt.Errorf("feed in state %s", s.state)
	}
	if position < 0 {
		return fmt.Errorf("negative position %d", position)
	}
	if key <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKey, int(key))
	}

	anchor := s.maps[s.cursor].trigger
	for ; s.cursor < len(s.maps); s.cursor++ {
		t := s.maps[s.cursor].trigger
		var tp KeyCode
		if position < len(t) {
			tp = t[position]
		}
		if keysCompareN(anchor, t, position) != 0 || tp > key {
			s.state = matchNotFound
			break
		}
		if tp == key {
			break
		}
	}
	if s.state == matchNotFound {
		return nil
	}
	if s.cursor >= len(s.maps) {
		s.state = matchNotFound
		return nil
	}

	t := s.maps[s.cursor].trigger
	if len(t) != position+1 {
		// Trigger continues past this key; keep looking.
		return nil
	}
	s.foundIdx = s.cursor
	next := s.cursor + 1
	if next >= len(s.maps) || keysCompareN(s.maps[next].trigger, t, position+1) != 0 {
		s.state = matchFound
	}
	return nil
}

// finalize ends the pass. If a full trigger was seen at any point the
// pass settles on the longest one.
func (s *MapSet) finalize() {
	if s.foundIdx >= 0 {
		s.cursor = s.foundIdx
		s.state = matchFound
	} else if s.state == matchStillLooking {
		s.state = matchNotFound
	}
}
