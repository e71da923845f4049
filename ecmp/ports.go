// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Port name resolution.

package ecmp

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Port names are the front panel label, optionally prefixed with "swp", and an optional split
// lane, e.g. "12", "swp1" or "swp3s1". Other naming schemes, like SONiC's "Ethernet<N>" where N
// is a lane index rather than a label, need a port name map.
var portNameRe = regexp.MustCompile(`^(?:swp)?(\d+)(?:s(\d+))?$`)

// Aliases maps user-defined port names to a port spec understood by PortMap.
type Aliases interface {
	Lookup(name string) (string, bool)
}

// PortMap resolves switch port names to SDK logical ports.
type PortMap struct {
	ports   []Port
	byLabel map[int][]Port
	byLog   map[LogPort]Port
	aliases Aliases
}

// NewPortMap indexes ports by front panel label. Ports sharing a label are split ports; they are
// ordered by logical port id and numbered from lane 0. aliases may be nil.
func NewPortMap(ports []Port, aliases Aliases) *PortMap {
	pm := &PortMap{
		byLabel: make(map[int][]Port),
		byLog:   make(map[LogPort]Port),
		aliases: aliases,
	}

	sorted := append([]Port(nil), ports...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Label != sorted[j].Label {
			return sorted[i].Label < sorted[j].Label
		}
		return sorted[i].LogPort < sorted[j].LogPort
	})

	for _, p := range sorted {
		p.Lane = len(pm.byLabel[p.Label])
		pm.byLabel[p.Label] = append(pm.byLabel[p.Label], p)
		pm.byLog[p.LogPort] = p
		pm.ports = append(pm.ports, p)
	}

	return pm
}

// Ports returns every known port, ordered by label and lane.
func (pm *PortMap) Ports() []Port {
	return pm.ports
}

// Name returns the canonical display name of a port.
func (pm *PortMap) Name(p Port) string {
	if len(pm.byLabel[p.Label]) > 1 {
		return fmt.Sprintf("%ds%d", p.Label, p.Lane)
	}
	return strconv.Itoa(p.Label)
}

// Resolve maps a port name to its logical port. Aliases take precedence, then a raw "0x"
// logical port id, then the label form.
func (pm *PortMap) Resolve(name string) (LogPort, error) {
	spec := strings.TrimSpace(name)
	if pm.aliases != nil {
		if target, ok := pm.aliases.Lookup(spec); ok {
			spec = target
		}
	}

	if strings.HasPrefix(spec, "0x") || strings.HasPrefix(spec, "0X") {
		v, err := strconv.ParseUint(spec[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("port %q: invalid logical port id", name)
		}
		if _, ok := pm.byLog[LogPort(v)]; !ok {
			return 0, fmt.Errorf("port %q: logical port %#x not found", name, v)
		}
		return LogPort(v), nil
	}

	m := portNameRe.FindStringSubmatch(spec)
	if m == nil {
		return 0, fmt.Errorf("port %q: cannot parse port name, expected swp<label>[s<lane>] or a name map alias", name)
	}

	label, _ := strconv.Atoi(m[1])
	group, ok := pm.byLabel[label]
	if !ok {
		return 0, fmt.Errorf("port %q: no port with label %d", name, label)
	}

	if m[2] == "" {
		if len(group) > 1 {
			return 0, fmt.Errorf("port %q: label %d is split into %d ports, specify a lane", name, label, len(group))
		}
		return group[0].LogPort, nil
	}

	lane, _ := strconv.Atoi(m[2])
	if lane >= len(group) {
		return 0, fmt.Errorf("port %q: label %d has no lane %d", name, label, lane)
	}

	return group[lane].LogPort, nil
}
