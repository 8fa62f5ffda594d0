// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Slot is a single-assignment destination for one yielded value.
// The zero value is an empty slot.
type Slot[T any] struct {
	value T
	full  bool
}

// Full reports whether a value has been handed to the slot.
func (s *Slot[T]) Full() bool {
	return s.full
}

// Take removes and returns the value, if any.
func (s *Slot[T]) Take() (T, bool) {
	if !s.full {
		var zero T
		return zero, false
	}
	v := s.value
	var zero T
	s.value, s.full = zero, false
	return v, true
}

// channel is the state shared by a Sender and its Receiver.
// slot is non-nil only while the receiver is entered.
type channel[T any] struct {
	slot   *Slot[T]
	serial Serial
}

// Sender is the generator-side end of a rendezvous channel.
type Sender[T any] struct {
	ch *channel[T]
}

// Receiver is the adapter-side end of a rendezvous channel.
type Receiver[T any] struct {
	ch *channel[T]
}

// Pair creates a connected Sender and Receiver.
// The pair is single-producer single-consumer: the Receiver belongs to
// exactly one AsyncStream and the Sender to that stream's generator.
func Pair[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{serial: nextSerial()}
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Serial returns the serial of the pair.
func (tx *Sender[T]) Serial() Serial {
	return tx.ch.serial
}

// Send yields v to the paired receiver.
// Perform(Yield[T]{...}) wrapped for Cont-world bodies.
func (tx *Sender[T]) Send(v T) kont.Eff[struct{}] {
	return kont.Perform(Yield[T]{Value: v, tx: tx})
}

// TrySend hands v to the slot the receiver is currently entered with.
// Returns iox.ErrWouldBlock if the slot already holds a value; v is not
// stored and the hand-off must be retried on a later step.
// Panics if the receiver is not entered.
func (tx *Sender[T]) TrySend(v T) error {
	dst := tx.ch.slot
	if dst == nil {
		panic("stream: send outside of a stream step")
	}
	if dst.full {
		return iox.ErrWouldBlock
	}
	dst.value, dst.full = v, true
	return nil
}

// Serial returns the serial of the pair.
func (rx *Receiver[T]) Serial() Serial {
	return rx.ch.serial
}

// Entered is the scope of a Receiver association with a Slot.
// Exit must be called on every path, typically with defer.
type Entered[T any] struct {
	ch  *channel[T]
	dst *Slot[T]
}

// Enter routes hand-offs from the paired Sender into dst until Exit.
// Panics if the receiver is already entered.
func (rx *Receiver[T]) Enter(dst *Slot[T]) Entered[T] {
	if rx.ch.slot != nil {
		panic("stream: receiver entered twice")
	}
	rx.ch.slot = dst
	return Entered[T]{ch: rx.ch, dst: dst}
}

// Exit ends the association. Calling Exit more than once is a no-op.
func (e Entered[T]) Exit() {
	if e.ch.slot == e.dst {
		e.ch.slot = nil
	}
}
