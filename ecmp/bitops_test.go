// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"testing"
)

var (
	flsTest   = [...]uint32{0, 1, 0x80000000, 0x600}
	flsResult = [...]uint{0, 1, 32, 11}
)

func TestFls(t *testing.T) {
	for i, x := range flsTest {
		if fls(x) != flsResult[i] {
			t.Fatalf("fls(%#x) = %d, want %d", x, fls(x), flsResult[i])
		}
	}
}

func TestLowestBit(t *testing.T) {
	if lowestBit(0x60) != 0x20 {
		t.Fail()
	}

	if lowestBit(0) != 0 {
		t.Fail()
	}
}
