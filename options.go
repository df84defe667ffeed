package kui

import "time"

// Option defines the interface for Manager options.
type Option interface {
	apply(cfg *config)
}

type config struct {
	terminalTimeout time.Duration
	userTimeout     time.Duration
	readKey         ReadKeyFunc
	dataReady       DataReadyFunc
	terminalMaps    *MapSet
}

type terminalTimeoutOption time.Duration

func (o terminalTimeoutOption) apply(cfg *config) {
	cfg.terminalTimeout = time.Duration(o)
}

// WithTerminalTimeout configures how long the terminal layer waits for
// the continuation of an escape sequence before treating the bytes read
// so far as complete.
func WithTerminalTimeout(d time.Duration) Option {
	return terminalTimeoutOption(d)
}

type userTimeoutOption time.Duration

func (o userTimeoutOption) apply(cfg *config) {
	cfg.userTimeout = time.Duration(o)
}

// WithUserTimeout configures how long the user layer waits for the
// continuation of a partially matched mapping.
func WithUserTimeout(d time.Duration) Option {
	return userTimeoutOption(d)
}

type readKeyOption struct {
	fn ReadKeyFunc
}

func (o readKeyOption) apply(cfg *config) {
	cfg.readKey = o.fn
}

// WithReadKey allows configuring the timed single-key read used by the
// terminal layer. This option is primarily useful for tests.
func WithReadKey(fn ReadKeyFunc) Option {
	return readKeyOption{fn}
}

type dataReadyOption struct {
	fn DataReadyFunc
}

func (o dataReadyOption) apply(cfg *config) {
	cfg.dataReady = o.fn
}

// WithDataReady allows configuring the readiness probe used by the user
// layer. This option is primarily useful for tests.
func WithDataReady(fn DataReadyFunc) Option {
	return dataReadyOption{fn}
}

type terminalMapSetOption struct {
	ms *MapSet
}

func (o terminalMapSetOption) apply(cfg *config) {
	cfg.terminalMaps = o.ms
}

// WithTerminalMapSet replaces the built-in escape sequence table with
// the given map set.
func WithTerminalMapSet(ms *MapSet) Option {
	return terminalMapSetOption{ms}
}
