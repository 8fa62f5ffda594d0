// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stream

import "code.hybscloud.com/atomix"

// Serial identifies a Sender/Receiver pair.
// Each call to Pair takes the next value.
type Serial = uint32

var pairs atomix.Uint32

func nextSerial() Serial {
	return pairs.Add(1)
}
