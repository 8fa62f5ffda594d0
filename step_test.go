// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"errors"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// blocked is a Source that never has a value.
type blocked struct {
	waker Waker
}

func (b *blocked) TryRecv(w Waker) (int, error) {
	b.waker = w
	return 0, iox.ErrWouldBlock
}

// stepOnce runs one step of s with dst entered, as Next does.
func stepOnce[T any](s *AsyncStream[T], dst *Slot[T], w Waker) (bool, error) {
	enter := s.rx.Enter(dst)
	defer enter.Exit()
	return s.step(w)
}

func TestStepStartCompletes(t *testing.T) {
	_, rx := Pair[int]()
	s := New(rx, ExprDone())

	var dst Slot[int]
	finished, err := stepOnce(s, &dst, NoopWaker)
	if err != nil || !finished {
		t.Fatalf("got (%v, %v), want (true, nil)", finished, err)
	}
	if dst.Full() {
		t.Fatal("completion must not fill the slot")
	}
	if !s.started || s.susp != nil {
		t.Fatal("expected started generator with no suspension")
	}
}

func TestStepYieldParks(t *testing.T) {
	tx, rx := Pair[int]()
	s := New(rx, ExprSendThen(tx, 7, ExprDone()))

	var dst Slot[int]
	finished, err := stepOnce(s, &dst, NoopWaker)
	if err != nil || finished {
		t.Fatalf("got (%v, %v), want (false, nil)", finished, err)
	}
	if v, ok := dst.Take(); !ok || v != 7 {
		t.Fatalf("slot got (%d, %v), want (7, true)", v, ok)
	}
	if !s.yielded || s.susp == nil {
		t.Fatal("generator must stay parked on the yield")
	}
	if _, ok := s.susp.Op().(Yield[int]); !ok {
		t.Fatalf("expected Yield[int], got %T", s.susp.Op())
	}

	// the next step resumes past the yield and finishes
	finished, err = stepOnce(s, &dst, NoopWaker)
	if err != nil || !finished {
		t.Fatalf("got (%v, %v), want (true, nil)", finished, err)
	}
	if dst.Full() || s.yielded {
		t.Fatal("resuming step must not yield again")
	}
}

func TestStepBlockedAwait(t *testing.T) {
	_, rx := Pair[int]()
	src := &blocked{}
	s := New(rx, ExprAwaitBind[int](src, func(int, error) kont.Expr[struct{}] {
		return ExprDone()
	}))

	var (
		dst Slot[int]
		sig Signal
	)
	finished, err := stepOnce(s, &dst, &sig)
	if err != nil || finished {
		t.Fatalf("got (%v, %v), want (false, nil)", finished, err)
	}
	susp := s.susp
	if susp == nil {
		t.Fatal("expected suspension for Await")
	}
	if src.waker != Waker(&sig) {
		t.Fatal("source must receive the step's waker")
	}

	if _, err := stepOnce(s, &dst, &sig); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.susp != susp {
		t.Fatal("suspension should be kept unconsumed while blocked")
	}
}

func TestStepThrow(t *testing.T) {
	errStep := errors.New("step-boom")
	_, rx := Pair[int]()
	s := New(rx, kont.ExprThrowError[error, struct{}](errStep))

	var dst Slot[int]
	finished, err := stepOnce(s, &dst, NoopWaker)
	if !errors.Is(err, errStep) || !finished {
		t.Fatalf("got (%v, %v), want (true, %v)", finished, err, errStep)
	}
	if s.susp != nil {
		t.Fatal("thrown error must discard the suspension")
	}

	finished, err = stepOnce(s, &dst, NoopWaker)
	if err != nil || !finished {
		t.Fatalf("after throw got (%v, %v), want (true, nil)", finished, err)
	}
}

func TestStepForeignYieldPanics(t *testing.T) {
	other, _ := Pair[int]()
	_, rx := Pair[int]()
	s := New(rx, Reify(other.Send(1)))

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || msg != "stream: yield on a foreign sender" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	var dst Slot[int]
	stepOnce(s, &dst, NoopWaker)
}
