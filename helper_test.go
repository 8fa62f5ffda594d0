// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream_test

import (
	"io"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/stream"
)

// gate is a Source that blocks until Open, then yields its value once per
// TryRecv. Single-goroutine only.
type gate[T any] struct {
	open  bool
	value T
	polls int
	waker stream.Waker
}

func (g *gate[T]) TryRecv(w stream.Waker) (T, error) {
	g.polls++
	if !g.open {
		g.waker = w
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return g.value, nil
}

// Open releases the gate with v and wakes the registered waker.
func (g *gate[T]) Open(v T) {
	g.open, g.value = true, v
	if g.waker != nil {
		g.waker.Wake()
	}
}

// list is a Source over a fixed slice; io.EOF when exhausted.
type list[T any] struct {
	values []T
}

func (l *list[T]) TryRecv(stream.Waker) (T, error) {
	if len(l.values) == 0 {
		var zero T
		return zero, io.EOF
	}
	v := l.values[0]
	l.values = l.values[1:]
	return v, nil
}

// failing is a Source that always fails with err.
type failing[T any] struct {
	err error
}

func (f failing[T]) TryRecv(stream.Waker) (T, error) {
	var zero T
	return zero, f.err
}

// counter is a Waker that counts wake-ups.
type counter struct {
	n int
}

func (c *counter) Wake() { c.n++ }

// drain polls s until io.EOF, retrying on iox.ErrWouldBlock, for at most
// limit calls. Returns the values and the number of not-ready results.
func drain[T any](s *stream.AsyncStream[T], limit int) ([]T, int, error) {
	var (
		out     []T
		pending int
	)
	for range limit {
		v, err := s.Next(stream.NoopWaker)
		switch {
		case err == nil:
			out = append(out, v)
		case err == io.EOF:
			return out, pending, nil
		case iox.IsWouldBlock(err):
			pending++
		default:
			return out, pending, err
		}
	}
	return out, pending, iox.ErrWouldBlock
}
