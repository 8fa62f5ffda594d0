// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive generator body (Cont-world).
// step returns Left(nextState) to continue or Right to finish.
func Loop[S any](initial S, step func(S) kont.Eff[kont.Either[S, struct{}]]) kont.Eff[struct{}] {
	return kont.Bind(step(initial), func(e kont.Either[S, struct{}]) kont.Eff[struct{}] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		return Done()
	})
}

// ExprLoop runs a recursive generator body (Expr-world).
// step returns Left(nextState) to continue or Right to finish.
// States that complete without an effect are unrolled in place.
func ExprLoop[S any](initial S, step func(S) kont.Expr[kont.Either[S, struct{}]]) kont.Expr[struct{}] {
	m := step(initial)
	for {
		if _, ok := m.Frame.(kont.ReturnFrame); !ok {
			break
		}
		next, ok := m.Value.GetLeft()
		if !ok {
			return ExprDone()
		}
		m = step(next)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, struct{}])
		if next, ok := e.GetLeft(); ok {
			result := ExprLoop(next, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
		}
		return kont.Expr[kont.Erased]{Value: kont.Erased(struct{}{}), Frame: exprReturnFrame}
	}
	bf.Next = exprReturnFrame
	return kont.Expr[struct{}]{
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}

// Emit yields values on tx in order, one per step.
func Emit[T any](tx *Sender[T], values ...T) kont.Eff[struct{}] {
	return Loop(0, func(i int) kont.Eff[kont.Either[int, struct{}]] {
		if i >= len(values) {
			return kont.Pure(kont.Right[int](struct{}{}))
		}
		return SendThen(tx, values[i], kont.Pure(kont.Left[int, struct{}](i+1)))
	})
}
