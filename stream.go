// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// noCopy marks AsyncStream as non-copyable for go vet's copylocks check.
// A suspended generator must stay with the stream that stepped it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AsyncStream is a pull-based sequence over a generator.
//
// Each call to Next drives the generator by one step and surfaces at most
// one value the generator yielded during that step. AsyncStream is not safe
// for concurrent use: a single driver calls Next at a time.
// It must not be copied after the first call to Next.
type AsyncStream[T any] struct {
	_         noCopy
	rx        *Receiver[T]
	generator kont.Expr[struct{}]
	susp      *kont.Suspension[struct{}]
	resume    kont.Resumed
	started   bool
	yielded   bool
	done      bool
}

// New creates a stream from a receiver and the generator holding its
// paired Sender. The generator does not run until the first Next.
func New[T any](rx *Receiver[T], generator kont.Expr[struct{}]) *AsyncStream[T] {
	return &AsyncStream[T]{rx: rx, generator: generator}
}

// FromEff creates a Sender/Receiver pair and a stream over the Cont-world
// generator body returns.
func FromEff[T any](body func(tx *Sender[T]) kont.Eff[struct{}]) *AsyncStream[T] {
	tx, rx := Pair[T]()
	return New(rx, Reify(body(tx)))
}

// FromExpr creates a Sender/Receiver pair and a stream over the Expr-world
// generator body returns.
func FromExpr[T any](body func(tx *Sender[T]) kont.Expr[struct{}]) *AsyncStream[T] {
	tx, rx := Pair[T]()
	return New(rx, body(tx))
}

// Next drives the generator one step.
//
// Returns (v, nil) if the step yielded v, (zero, iox.ErrWouldBlock) if
// the generator is waiting and w will be woken, or (zero, io.EOF) once the
// generator has finished. The generator stays parked on a yield until the
// following call. An error thrown by the generator is returned by the step
// that threw it; the next call returns io.EOF.
//
// A panic raised by the generator propagates to the caller and leaves the
// stream unusable.
func (s *AsyncStream[T]) Next(w Waker) (T, error) {
	var zero T
	if s.done {
		return zero, io.EOF
	}
	if w == nil {
		w = NoopWaker
	}

	var dst Slot[T]
	finished, err := s.drive(&dst, w)
	// a throwing step reports the error; the next call reports io.EOF
	s.done = finished && err == nil

	if v, ok := dst.Take(); ok {
		return v, nil
	}
	if err != nil {
		return zero, err
	}
	if s.done {
		return zero, io.EOF
	}
	return zero, iox.ErrWouldBlock
}

// drive enters the receiver with dst for exactly one step.
func (s *AsyncStream[T]) drive(dst *Slot[T], w Waker) (bool, error) {
	enter := s.rx.Enter(dst)
	defer enter.Exit()
	return s.step(w)
}

// IsTerminated reports whether Next has returned io.EOF.
// Once true it stays true.
func (s *AsyncStream[T]) IsTerminated() bool {
	return s.done
}

// SizeHint returns bounds on the remaining number of values.
// The lower bound is always 0. The upper bound is 0 with bounded true once
// terminated; otherwise it is unknown and bounded is false.
func (s *AsyncStream[T]) SizeHint() (lower, upper int, bounded bool) {
	if s.done {
		return 0, 0, true
	}
	return 0, 0, false
}

// Serial returns the serial of the stream's Sender/Receiver pair.
func (s *AsyncStream[T]) Serial() Serial {
	return s.rx.Serial()
}

// Discard drops the generator without running it further and terminates
// the stream. Values the generator has not yet yielded are never observed.
func (s *AsyncStream[T]) Discard() {
	if s.susp != nil {
		s.susp.Discard()
		s.susp = nil
	}
	s.generator = kont.Expr[struct{}]{}
	s.resume, s.yielded = nil, false
	s.started = true
	s.done = true
}
