// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSendThen yields v on tx and then continues with next.
// Fuses ExprPerform(Yield[T]{...}) + ExprThen.
func ExprSendThen[T, B any](tx *Sender[T], v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Yield[T]{Value: v, tx: tx}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func awaitBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T, error) kont.Expr[B])
	e := current.(kont.Either[error, T])
	var result kont.Expr[B]
	if err, ok := e.GetLeft(); ok {
		var zero T
		result = f(zero, err)
	} else {
		v, _ := e.GetRight()
		result = f(v, nil)
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind waits for the next value of src and passes it to f.
// Fuses ExprPerform(Await[T]{...}) + ExprBind.
func ExprAwaitBind[T, B any](src Source[T], f func(v T, err error) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Source: src}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprDone ends an Expr-world generator body.
func ExprDone() kont.Expr[struct{}] {
	return kont.ExprReturn(struct{}{})
}
