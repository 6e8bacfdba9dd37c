// Package refresh carries the cross-view refresh signal: a counter
// bumped after a mutation so sibling views know to reload. There is no
// ordering or delivery guarantee beyond "incremented at least once
// after the triggering action completed".
package refresh

import "sync/atomic"

// Signal is a monotonically increasing counter. The zero value is
// ready to use.
type Signal struct {
	n atomic.Int64
}

// Trigger bumps the counter.
func (s *Signal) Trigger() { s.n.Add(1) }

// Current returns the counter's value. Views remember the value they
// last loaded at and refetch when it has moved.
func (s *Signal) Current() int64 { return s.n.Load() }
