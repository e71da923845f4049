// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"fmt"
	"io"
)

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DumpGlobal writes the global hash parameters followed by the state of every known hash bit.
func DumpGlobal(w io.Writer, p GlobalParams) {
	fmt.Fprintf(w, "ECMP Hash params: %s\n", p.Hash)
	fmt.Fprintf(w, "    %-20s %s\n", "ECMP Hash Type:", p.Type)
	fmt.Fprintf(w, "    %-20s %d\n", "Symmetric Hash:", boolToInt(p.Symmetric))
	fmt.Fprintf(w, "    %-20s %d\n", "Seed:", p.Seed)
	fmt.Fprintf(w, "    %-20s %d\n", "ECMP Hash:", uint32(p.Hash))
	fmt.Fprintln(w, "ECMP Hash fields:")
	DumpHashFields(w, p.Hash)
}

// DumpHashFields writes one line per known hash bit, stating whether it is set in m.
func DumpHashFields(w io.Writer, m Bitmask) {
	for _, b := range HashBits {
		fmt.Fprintf(w, "    %-40s %t\n", b.Name, m.Has(b.Bit))
	}
}

// DumpPort writes the hash parameters about to be applied to a single port.
func DumpPort(w io.Writer, name string, port LogPort, p PortParams) {
	fmt.Fprintf(w, "Port %s (log_port %s) ECMP Hash params:\n", name, port)
	fmt.Fprintf(w, "    %-20s %s\n", "ECMP Hash Type:", p.Type)
	fmt.Fprintf(w, "    %-20s %d\n", "Symmetric Hash:", boolToInt(p.Symmetric))
	fmt.Fprintf(w, "    %-20s %d\n", "Seed:", p.Seed)
	fmt.Fprintf(w, "    Hash field enables (%d):\n", len(p.Enables))
	for _, e := range p.Enables {
		fmt.Fprintf(w, "        %s\n", e)
	}
	fmt.Fprintf(w, "    Hash fields (%d):\n", len(p.Fields))
	for _, f := range p.Fields {
		fmt.Fprintf(w, "        %s\n", f)
	}
}
