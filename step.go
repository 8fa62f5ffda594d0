// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/kont"
)

// step advances the generator until it yields, finishes, throws, or
// waits on a source. Returns true if the generator finished.
//
// A yield ends the step with the generator still parked on it. The
// generator is resumed past the yield only at the start of the next step,
// so nothing after a yield runs before the consumer asks again.
// Awaits that complete immediately do not end the step.
func (s *AsyncStream[T]) step(w Waker) (bool, error) {
	if !s.started {
		s.started = true
		_, s.susp = kont.StepExpr(s.generator)
		s.generator = kont.Expr[struct{}]{}
	} else if s.yielded {
		s.yielded = false
		v := s.resume
		s.resume = nil
		_, s.susp = s.susp.Resume(v)
	}
	for s.susp != nil {
		switch op := s.susp.Op().(type) {
		case yieldDispatcher:
			if !op.pairedWith(s.rx.ch) {
				panic("stream: yield on a foreign sender")
			}
			v, err := op.DispatchYield()
			if err != nil {
				panic("stream: yield into an occupied slot")
			}
			s.resume, s.yielded = v, true
			return false, nil
		case awaitDispatcher:
			v, err := op.DispatchAwait(w)
			if err != nil {
				return false, nil
			}
			_, s.susp = s.susp.Resume(v)
		case errorDispatcher:
			v, err := dispatchError(op)
			if err != nil {
				s.susp.Discard()
				s.susp = nil
				return true, err
			}
			_, s.susp = s.susp.Resume(v)
		default:
			panic("stream: unhandled effect in Next")
		}
	}
	return true, nil
}
