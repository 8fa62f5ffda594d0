// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"
	"iter"

	"code.hybscloud.com/iox"
)

// All returns an iterator over the values of s.
// A thrown error is yielded as the final pair. Breaking out of the loop
// leaves s as it was after the last yielded value.
func All[T any](s *AsyncStream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var (
			sig Signal
			bo  iox.Backoff
		)
		for {
			v, err := s.Next(&sig)
			switch {
			case err == nil:
				bo.Reset()
				if !yield(v, nil) {
					return
				}
			case err == io.EOF:
				return
			case iox.IsWouldBlock(err):
				if sig.Fired() {
					bo.Reset()
					continue
				}
				bo.Wait()
			default:
				yield(v, err)
				return
			}
		}
	}
}
