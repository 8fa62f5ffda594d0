// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"io"

	"code.hybscloud.com/iox"
)

// Collect drives s to the end and returns every value it yielded.
// Waits past iox.ErrWouldBlock with adaptive backoff (iox.Backoff),
// retrying immediately after a wake-up. Returns the values yielded so far
// and the error if the generator throws.
//
// Collect does not return if the generator never finishes.
func Collect[T any](s *AsyncStream[T]) ([]T, error) {
	var (
		out []T
		sig Signal
		bo  iox.Backoff
	)
	for {
		v, err := s.Next(&sig)
		switch {
		case err == nil:
			out = append(out, v)
			bo.Reset()
		case err == io.EOF:
			return out, nil
		case iox.IsWouldBlock(err):
			if sig.Fired() {
				bo.Reset()
				continue
			}
			bo.Wait()
		default:
			return out, err
		}
	}
}
