// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package version

import (
	"strings"
	"testing"
)

func TestPrint(t *testing.T) {
	Version, Branch, Revision = "1.2.0", "master", "abc123"

	s := Print("sx_ecmp_hash")
	if !strings.HasPrefix(s, "sx_ecmp_hash (version=1.2.0, branch=master, revision=abc123)") {
		t.Fatalf("unexpected banner: %s", s)
	}
}
