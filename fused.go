// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"

	"code.hybscloud.com/kont"
)

// SendThen yields v on tx and then continues with next.
// Fuses Perform(Yield[T]{...}) + Then.
func SendThen[T, B any](tx *Sender[T], v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(tx.Send(v), next)
}

// AwaitBind waits for the next value of src and passes it to f.
// err is the source's terminal error (io.EOF for a closed Queue);
// iox.ErrWouldBlock never reaches f.
// Fuses Perform(Await[T]{...}) + Bind.
func AwaitBind[T, B any](src Source[T], f func(v T, err error) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[T]{Source: src}), func(e kont.Either[error, T]) kont.Eff[B] {
		if err, ok := e.GetLeft(); ok {
			var zero T
			return f(zero, err)
		}
		v, _ := e.GetRight()
		return f(v, nil)
	})
}

// Done ends a generator body.
func Done() kont.Eff[struct{}] {
	return kont.Pure(struct{}{})
}

// ForEach yields every value of src on tx until src reports io.EOF.
// Any other source error is thrown and ends the stream.
func ForEach[T any](src Source[T], tx *Sender[T]) kont.Eff[struct{}] {
	return Loop(struct{}{}, func(struct{}) kont.Eff[kont.Either[struct{}, struct{}]] {
		return AwaitBind(src, func(v T, err error) kont.Eff[kont.Either[struct{}, struct{}]] {
			if err == io.EOF {
				return kont.Pure(kont.Right[struct{}](struct{}{}))
			}
			if err != nil {
				return kont.ThrowError[error, kont.Either[struct{}, struct{}]](err)
			}
			return SendThen(tx, v, kont.Pure(kont.Left[struct{}, struct{}](struct{}{})))
		})
	})
}
