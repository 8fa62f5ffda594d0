// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world generator body to Expr-world, the form
// AsyncStream steps.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world generator body to Cont-world so it can be
// composed with SendThen and AwaitBind.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
