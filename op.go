// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for handing a value to the stream.
// Perform(Yield[T]{...}) is built by Sender.Send, SendThen or ExprSendThen.
type Yield[T any] struct {
	kont.Phantom[struct{}]
	Value T
	tx    *Sender[T]
}

// DispatchYield hands the value to the receiver's entered slot.
// Returns iox.ErrWouldBlock if the slot is already full.
func (y Yield[T]) DispatchYield() (kont.Resumed, error) {
	if y.tx == nil {
		panic("stream: yield without sender")
	}
	if err := y.tx.TrySend(y.Value); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Await is the effect operation for waiting on a Source.
// Resumes with Right(v) on a value, or Left(err) when the source fails
// with anything other than iox.ErrWouldBlock.
type Await[T any] struct {
	kont.Phantom[kont.Either[error, T]]
	Source Source[T]
}

// DispatchAwait polls the source once, registering w for wake-up.
// Non-blocking: returns iox.ErrWouldBlock if the source has nothing yet.
func (a Await[T]) DispatchAwait(w Waker) (kont.Resumed, error) {
	v, err := a.Source.TryRecv(w)
	if err != nil {
		if iox.IsWouldBlock(err) {
			return nil, err
		}
		return kont.Left[error, T](err), nil
	}
	return kont.Right[error](v), nil
}

// pairedWith reports whether the yield's sender belongs to ch.
func (y Yield[T]) pairedWith(ch any) bool {
	return y.tx != nil && any(y.tx.ch) == ch
}

// yieldDispatcher and awaitDispatcher are the structural interfaces the
// driving step dispatches on.
type yieldDispatcher interface {
	DispatchYield() (kont.Resumed, error)
	pairedWith(ch any) bool
}

type awaitDispatcher interface {
	DispatchAwait(w Waker) (kont.Resumed, error)
}

// errorDispatcher matches kont error operations thrown with error values.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}
