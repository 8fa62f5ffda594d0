// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// queueCapacity is the bounded capacity of a Queue.
const queueCapacity = 64

// Source is an external event a generator can Await.
//
// TryRecv is non-blocking: it returns iox.ErrWouldBlock when no value is
// ready, after arranging for w to be woken when one may be. Any other error
// is terminal for the source.
type Source[T any] interface {
	TryRecv(w Waker) (T, error)
}

// Queue is a bounded single-producer single-consumer Source.
// One goroutine calls Push and Close; the stream driving the generator
// that awaits the Queue is the only consumer.
type Queue[T any] struct {
	q      lfq.SPSC[T]
	closed atomix.Uint32
	waker  atomix.Pointer[wakerRef]
}

type wakerRef struct {
	w Waker
}

// NewQueue creates an empty Queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.q.Init(queueCapacity)
	return q
}

// Push enqueues v and wakes a waiting consumer.
// Non-blocking: returns iox.ErrWouldBlock if the queue is full and
// ErrClosed after Close.
func (q *Queue[T]) Push(v T) error {
	if q.closed.Load() != 0 {
		return ErrClosed
	}
	if err := q.q.Enqueue(&v); err != nil {
		return err
	}
	q.wake()
	return nil
}

// Close marks the end of the queue. Values pushed before Close are still
// delivered; TryRecv reports io.EOF once they are drained.
func (q *Queue[T]) Close() {
	q.closed.Store(1)
	q.wake()
}

// TryRecv dequeues the next value.
// Returns iox.ErrWouldBlock if the queue is empty and open, registering w.
func (q *Queue[T]) TryRecv(w Waker) (T, error) {
	if v, err := q.q.Dequeue(); err == nil {
		return v, nil
	}
	q.waker.Store(&wakerRef{w: w})
	// re-check after publishing w so a concurrent Push cannot be missed
	if v, err := q.q.Dequeue(); err == nil {
		return v, nil
	}
	if q.closed.Load() != 0 {
		if v, err := q.q.Dequeue(); err == nil {
			return v, nil
		}
		var zero T
		return zero, io.EOF
	}
	var zero T
	return zero, iox.ErrWouldBlock
}

func (q *Queue[T]) wake() {
	if r := q.waker.Swap(nil); r != nil {
		r.w.Wake()
	}
}
