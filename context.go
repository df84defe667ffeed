package kui

import "errors"

// lookaheadMax bounds the number of keys a single match pass may
// consume before the mappings must have resolved.
const lookaheadMax = 1024

// ErrLookaheadOverflow is returned when a match pass reads more than
// lookaheadMax keys without the map sets resolving.
var ErrLookaheadOverflow = errors.New("kui: lookahead overflow")

// Context is one input stage: it pulls keys from an upstream source,
// matches them against its map sets, and hands the rewritten stream to
// its caller. Keys consumed beyond a match, and replacement sequences,
// wait in the pushback buffer and are served before the upstream is
// consulted again.
type Context struct {
	read     func() (KeyCode, error)
	pushback []KeyCode
	sets     []*MapSet
}

func newContext(read func() (KeyCode, error)) *Context {
	return &Context{read: read}
}

// AddMapSet appends a map set. Later sets win when several match the
// same input.
func (c *Context) AddMapSet(s *MapSet) {
	c.sets = append(c.sets, s)
}

// MapSets returns the map sets in the order they were added.
func (c *Context) MapSets() []*MapSet { return c.sets }

// CanGetKey reports whether a key is buffered and can be returned
// without consulting the upstream source.
func (c *Context) CanGetKey() bool { return len(c.pushback) > 0 }

// nextRaw returns the next unmatched key: buffered first, then
// upstream.
func (c *Context) nextRaw() (KeyCode, error) {
	if len(c.pushback) > 0 {
		k := c.pushback[0]
		c.pushback = c.pushback[1:]
		return k, nil
	}
	return c.read()
}

// unread prepends keys to the pushback buffer, preserving their order.
func (c *Context) unread(keys []KeyCode) {
	if len(keys) == 0 {
		return
	}
	c.pushback = append(append([]KeyCode(nil), keys...), c.pushback...)
}

// findResult is the outcome of one match pass: either a key to hand to
// the caller (zero when the pass went idle), or a note that a mapping
// expanded and the pass must be repeated over the rewritten stream.
type findResult struct {
	expanded bool
	key      KeyCode
}

// findKey runs one match pass. It reads keys until every map set has
// resolved or the upstream goes idle, then either emits the first key
// unchanged (returning the rest to the buffer) or applies the longest
// match of the last matching set (returning the overrun and then the
// replacement to the buffer).
func (c *Context) findKey() (findResult, error) {
	for _, s := range c.sets {
		s.reset()
	}

	var buf [lookaheadMax]KeyCode
	position := -1
	for {
		looking := false
		for _, s := range c.sets {
			if s.matchState() == matchStillLooking {
				looking = true
				break
			}
		}
		if !looking && position >= 0 {
			break
		}
		key, err := c.nextRaw()
		if err != nil {
			return findResult{}, err
		}
		if key == 0 {
			break
		}
		position++
		if position >= lookaheadMax {
			return findResult{}, ErrLookaheadOverflow
		}
		buf[position] = key
		for _, s := range c.sets {
			if s.matchState() != matchStillLooking {
				continue
			}
			if err := s.feed(key, position); err != nil {
				return findResult{}, err
			}
		}
	}

	if position < 0 {
		debugPrintf("findkey: idle\n")
		return findResult{}, nil
	}

	var found *Mapping
	for _, s := range c.sets {
		s.finalize()
		if m := s.matched(); m != nil {
			found = m
		}
	}

	if found == nil {
		c.unread(buf[1 : position+1])
		debugPrintf("findkey: no match, emit %s\n", debugKey(buf[0]))
		return findResult{key: buf[0]}, nil
	}
	c.unread(buf[len(found.trigger) : position+1])
	c.unread(found.replacement)
	debugPrintf("findkey: matched %s\n", found)
	return findResult{expanded: true}, nil
}

// GetKey returns the next logical key, applying mappings. Zero means
// the upstream went idle with no complete key available; any keys read
// while looking for a match stay buffered for the next call.
func (c *Context) GetKey() (KeyCode, error) {
	for {
		r, err := c.findKey()
		if err != nil {
			return 0, err
		}
		if !r.expanded {
			return r.key, nil
		}
	}
}
