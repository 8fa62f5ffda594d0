// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stream turns an effectful generator written on
// [code.hybscloud.com/kont] into a lazy, pull-based sequence.
//
// A generator is an ordinary kont computation that performs [Yield] to hand a
// value to its paired [Sender], and [Await] to wait on an external [Source].
// [AsyncStream] drives the generator one step per [AsyncStream.Next] call and
// surfaces at most one yielded value per step.
//
// # Pull Protocol
//
// [AsyncStream.Next] reports one of three outcomes:
//
//   - (v, nil): the step yielded v.
//   - (zero, [code.hybscloud.com/iox.ErrWouldBlock]): the generator is waiting on a
//     [Source]; the [Waker] passed to Next is woken when it can make progress.
//   - (zero, [io.EOF]): the generator finished. Every later call reports io.EOF.
//
// The generator stays parked on a yield until the next call, so code after a
// yield never runs before the consumer asks for another value. The step that
// yields the last value returns it, and the following call returns io.EOF.
//
// Errors thrown with kont.ThrowError[error, A] end the stream. The throwing
// step returns the error; the next call returns io.EOF.
//
// # API Topologies
//
//   - Adapter: [New], [FromEff], [FromExpr]; [AsyncStream.Next], [AsyncStream.IsTerminated], [AsyncStream.SizeHint].
//   - Channel: [Pair] creates a [Sender]/[Receiver] pair. [Receiver.Enter] scopes a [Slot] to one step.
//   - Cont-world: [SendThen], [AwaitBind], [Done], [ForEach], [Emit], [Loop].
//   - Expr-world: [ExprSendThen], [ExprAwaitBind], [ExprDone], [ExprLoop]. Bridge via [Reify] and [Reflect].
//   - Sources: [Queue] is a bounded lock-free SPSC queue via [code.hybscloud.com/lfq].
//   - Drivers: [Collect] and [All] wait past [code.hybscloud.com/iox.ErrWouldBlock] using adaptive backoff.
//
// # Example
//
//	s := stream.FromEff(func(tx *stream.Sender[string]) kont.Eff[struct{}] {
//		return stream.SendThen(tx, "a", stream.SendThen(tx, "b", stream.Done()))
//	})
//	for {
//		v, err := s.Next(stream.NoopWaker)
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			continue // retry on ErrWouldBlock
//		}
//		fmt.Println(v)
//	}
package stream
