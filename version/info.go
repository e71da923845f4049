// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package version holds build information, set via "-X" ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   string
	Revision  string
	Branch    string
	BuildUser string
	BuildDate string
)

func BuildContext() string {
	return fmt.Sprintf("(go=%s, user=%s, date=%s)", runtime.Version(), BuildUser, BuildDate)
}

func Info() string {
	return fmt.Sprintf("(version=%s, branch=%s, revision=%s)", Version, Branch, Revision)
}

// Print returns the version banner of the named program, as shown by --version.
func Print(program string) string {
	return fmt.Sprintf("%s %s\n  build context: %s", program, Info(), BuildContext())
}
