package green

import "log/slog"

// An Option configures a [Runtime].
type Option func(rt *Runtime)

// WithLogger sets the logger a [Runtime] reports spawns, switches and
// completion to, at debug level.
// The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(rt *Runtime) {
		if l != nil {
			rt.logger = l
		}
	}
}

// WithSwitcher replaces the context switch primitive of a [Runtime].
func WithSwitcher(sw Switcher) Option {
	return func(rt *Runtime) {
		if sw != nil {
			rt.sw = sw
		}
	}
}

// WithSwitchHook sets a function that a [Runtime] calls right before every
// context switch, with the slots being switched from and to.
//
// f runs on the thread being switched away from, before any state changes.
// If f panics, the switch does not happen. f must not call [Yield] or spawn.
func WithSwitchHook(f func(from, to int)) Option {
	return func(rt *Runtime) {
		rt.onSwitch = f
	}
}
