// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "code.hybscloud.com/atomix"

// Waker is the wake token passed to AsyncStream.Next.
// A Source that cannot make progress keeps the Waker and calls Wake once
// it can. Wake may be called from any goroutine.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to Waker.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

type noopWaker struct{}

func (noopWaker) Wake() {}

// NoopWaker ignores wake-ups. Drivers using it must poll.
var NoopWaker Waker = noopWaker{}

// Signal is a Waker that counts wake-ups for a single polling driver.
// The zero value is ready to use.
type Signal struct {
	n    atomix.Uint32
	seen uint32
}

// Wake records a wake-up.
func (s *Signal) Wake() {
	s.n.Add(1)
}

// Fired reports whether Wake was called since the previous Fired.
// Must only be called by the driver that owns the Signal.
func (s *Signal) Fired() bool {
	n := s.n.Load()
	if n == s.seen {
		return false
	}
	s.seen = n
	return true
}
