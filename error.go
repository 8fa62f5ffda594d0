// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"errors"

	"code.hybscloud.com/kont"
)

// ErrClosed is returned by Queue.Push after Close.
var ErrClosed = errors.New("stream: queue closed")

// dispatchError runs a kont error operation eagerly.
// Returns the resume value, or the thrown error on Throw.
func dispatchError(op errorDispatcher) (kont.Resumed, error) {
	var ctx kont.ErrorContext[error]
	v, _ := op.DispatchError(&ctx)
	if ctx.HasErr {
		if ctx.Err == nil {
			return nil, errNilThrow
		}
		return nil, ctx.Err
	}
	return v, nil
}

// errNilThrow replaces a thrown nil error so that a throwing step is
// never mistaken for a waiting one.
var errNilThrow = errors.New("stream: generator threw a nil error")
