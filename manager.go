package kui

import "time"

// ReadKeyFunc reads one key from a file descriptor, waiting at most the
// given duration. It returns zero when no key arrived in time.
type ReadKeyFunc func(fd int, timeout time.Duration) (KeyCode, error)

// DataReadyFunc reports whether a read on the file descriptor would
// return data, waiting at most the given duration.
type DataReadyFunc func(fd int, timeout time.Duration) (bool, error)

// Manager runs the two-stage key pipeline over a terminal file
// descriptor. The terminal stage decodes escape sequences into symbolic
// keys on a short timeout; the user stage applies caller-registered
// mappings on a longer one. AddMapSet and GetKey operate on the user
// stage; the terminal stage is internal.
type Manager struct {
	fd       int
	terminal *Context
	user     *Context
}

// New creates a Manager reading from fd.
func New(fd int, opts ...Option) (*Manager, error) {
	cfg := config{
		terminalTimeout: 40 * time.Millisecond,
		userTimeout:     1000 * time.Millisecond,
		readKey:         ReadKey,
		dataReady:       DataReady,
	}
	for _, o := range opts {
		o.apply(&cfg)
	}
	if cfg.terminalMaps == nil {
		cfg.terminalMaps = TerminalMapSet()
	}

	m := &Manager{fd: fd}
	m.terminal = newContext(func() (KeyCode, error) {
		return cfg.readKey(fd, cfg.terminalTimeout)
	})
	m.terminal.AddMapSet(cfg.terminalMaps)

	// The user stage blocks on the terminal stage only when bytes are
	// actually pending; otherwise a partially matched user mapping
	// would stall a full terminal timeout per probe.
	m.user = newContext(func() (KeyCode, error) {
		if m.terminal.CanGetKey() {
			return m.terminal.GetKey()
		}
		ready, err := cfg.dataReady(fd, cfg.userTimeout)
		if err != nil {
			return 0, err
		}
		if ready {
			return m.terminal.GetKey()
		}
		return 0, nil
	})
	return m, nil
}

// Close releases the manager. The file descriptor is the caller's and
// stays open.
func (m *Manager) Close() error { return nil }

// AddMapSet registers a user map set. Later sets win on overlapping
// triggers.
func (m *Manager) AddMapSet(ms *MapSet) {
	m.user.AddMapSet(ms)
}

// MapSets returns the user map sets.
func (m *Manager) MapSets() []*MapSet {
	return m.user.MapSets()
}

// CanGetKey reports whether a key is buffered in the user stage.
func (m *Manager) CanGetKey() bool {
	return m.user.CanGetKey()
}

// GetKey returns the next logical key. Zero means no complete key
// arrived within the configured timeouts.
func (m *Manager) GetKey() (KeyCode, error) {
	return m.user.GetKey()
}
