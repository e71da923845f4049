// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Low-level bit operations.

package ecmp

import (
	"math/bits"
)

// fls returns the 1-based position of the most significant set bit in x, or zero if no bit is
// set.
func fls(x uint32) uint {
	return uint(bits.Len32(x))
}

// lowestBit isolates the least significant set bit of x.
func lowestBit(x uint32) uint32 {
	return x & -x
}
