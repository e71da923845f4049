// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// JSON hash configuration document.

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"

	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

const (
	DefaultHashConfFile = "/etc/sx_ecmp_hash/sx_ecmp_hash.json"

	// AllPorts is the router_port_hash key whose configuration applies to every port.
	AllPorts = "all"
)

// HashConf is the JSON hash document. At least one of the two sections must be present.
type HashConf struct {
	RouterGlobalHash *GlobalHashConf          `json:"router_global_hash"`
	RouterPortHash   map[string]*PortHashConf `json:"router_port_hash"`
}

// GlobalHashConf is the legacy router-wide configuration. Omitted keys keep the value currently
// programmed in the ASIC.
type GlobalHashConf struct {
	HashType  *string  `json:"ecmp_hash_type"`
	Symmetric *bool    `json:"symmetric_hash"`
	Seed      *uint32  `json:"seed"`
	Hash      []string `json:"ecmp_hash"`

	hashType ecmp.HashType
	hash     ecmp.Bitmask
}

func (g *GlobalHashConf) compile() error {
	var err error

	if g.HashType != nil {
		if g.hashType, err = ecmp.ParseHashType(*g.HashType); err != nil {
			return err
		}
	}

	if g.Hash != nil {
		if g.hash, err = ecmp.ParseBitmask(g.Hash); err != nil {
			return err
		}
	}

	return nil
}

// Update overlays the configured values onto p.
func (g *GlobalHashConf) Update(p *ecmp.GlobalParams) {
	if g.HashType != nil {
		p.Type = g.hashType
	}
	if g.Symmetric != nil {
		p.Symmetric = *g.Symmetric
	}
	if g.Seed != nil {
		p.Seed = *g.Seed
	}
	if g.Hash != nil {
		p.Hash = g.hash
	}
}

// PortHashConf is the hash configuration of one port, or of all ports.
type PortHashConf struct {
	HashType            string   `json:"ecmp_hash_type"`
	Symmetric           bool     `json:"symmetric_hash"`
	Seed                uint32   `json:"seed"`
	HashFieldEnableList []string `json:"hash_field_enable_list"`
	HashFieldList       []string `json:"hash_field_list"`

	params ecmp.PortParams
}

func (p *PortHashConf) compile() error {
	var err error

	p.params = ecmp.PortParams{Symmetric: p.Symmetric, Seed: p.Seed}

	if p.HashType != "" {
		if p.params.Type, err = ecmp.ParseHashType(p.HashType); err != nil {
			return err
		}
	}

	if p.params.Enables, err = ecmp.ParseFieldEnables(p.HashFieldEnableList); err != nil {
		return err
	}

	if p.params.Fields, err = ecmp.ParseFields(p.HashFieldList); err != nil {
		return err
	}

	return nil
}

// Params returns the compiled SDK parameters.
func (p *PortHashConf) Params() ecmp.PortParams {
	return p.params
}

// ParseHashConf decodes and validates a JSON hash document. Unknown keys are rejected.
func ParseHashConf(content []byte) (*HashConf, error) {
	conf := &HashConf{}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		return nil, errors.Wrap(err, "error parsing hash configuration")
	}

	if conf.RouterGlobalHash == nil && len(conf.RouterPortHash) == 0 {
		return nil, fmt.Errorf("hash configuration has neither router_global_hash nor router_port_hash")
	}

	if conf.RouterGlobalHash != nil {
		if err := conf.RouterGlobalHash.compile(); err != nil {
			return nil, errors.Wrap(err, "router_global_hash")
		}
	}

	for name, p := range conf.RouterPortHash {
		if p == nil {
			return nil, fmt.Errorf("router_port_hash: port %q has no configuration", name)
		}
		if err := p.compile(); err != nil {
			return nil, errors.Wrapf(err, "router_port_hash: port %q", name)
		}
	}

	return conf, nil
}

// ReadHashConf reads and validates the JSON hash document at path.
func ReadHashConf(path string) (*HashConf, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading hash configuration")
	}

	return ParseHashConf(content)
}

// Assignments resolves router_port_hash against the ports of the switch. The "all" entry, if
// present, yields one assignment per port in label order; explicitly named ports override it and
// follow in name order. Names that cannot be resolved are returned with Err set.
func (c *HashConf) Assignments(pm *ecmp.PortMap) []ecmp.PortAssignment {
	var (
		assignments []ecmp.PortAssignment
		index       = make(map[ecmp.LogPort]int)
	)

	if all, ok := c.RouterPortHash[AllPorts]; ok {
		for _, p := range pm.Ports() {
			index[p.LogPort] = len(assignments)
			assignments = append(assignments, ecmp.PortAssignment{
				Name:   pm.Name(p),
				Port:   p.LogPort,
				Params: all.Params(),
			})
		}
	}

	names := make([]string, 0, len(c.RouterPortHash))
	for name := range c.RouterPortHash {
		if name != AllPorts {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		a := ecmp.PortAssignment{Name: name, Params: c.RouterPortHash[name].Params()}
		a.Port, a.Err = pm.Resolve(name)

		if i, ok := index[a.Port]; ok && a.Err == nil {
			assignments[i] = a
			continue
		}

		if a.Err == nil {
			index[a.Port] = len(assignments)
		}
		assignments = append(assignments, a)
	}

	return assignments
}
