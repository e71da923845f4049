// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"errors"
)

// ErrSessionClosed is returned by MemSession once Close has been called.
var ErrSessionClosed = errors.New("session closed")

// MemSession is an in-memory Session. It backs --dry-run, where no SDK is touched, and lets
// callers inject SDK failures per operation or per port.
type MemSession struct {
	Global    GlobalParams
	PortList  []Port
	PortHash  map[LogPort]PortParams
	Failures  map[string]int // SDK return code to fail an operation with, keyed by op name
	PortFails map[LogPort]int
	Calls     []string
	closed    bool
}

// SyntheticPorts returns n unsplit ports labelled 1..n with Spectrum style logical port ids.
func SyntheticPorts(n int) []Port {
	ports := make([]Port, 0, n)
	for label := 1; label <= n; label++ {
		ports = append(ports, Port{LogPort: LogPort(0x10000 | label<<8), Label: label})
	}
	return ports
}

// NewMemSession returns a MemSession starting from the given global parameters and ports.
func NewMemSession(global GlobalParams, ports []Port) *MemSession {
	return &MemSession{
		Global:    global,
		PortList:  ports,
		PortHash:  make(map[LogPort]PortParams),
		Failures:  make(map[string]int),
		PortFails: make(map[LogPort]int),
	}
}

func (m *MemSession) call(op string) error {
	m.Calls = append(m.Calls, op)
	if m.closed {
		return ErrSessionClosed
	}
	if rc, ok := m.Failures[op]; ok && rc != 0 {
		return &StatusError{Op: op, Code: rc}
	}
	return nil
}

func (m *MemSession) GlobalHashParams() (GlobalParams, error) {
	if err := m.call("sx_api_router_ecmp_hash_params_get"); err != nil {
		return GlobalParams{}, err
	}
	return m.Global, nil
}

func (m *MemSession) SetGlobalHashParams(p GlobalParams) error {
	if err := m.call("sx_api_router_ecmp_hash_params_set"); err != nil {
		return err
	}
	m.Global = p
	return nil
}

func (m *MemSession) SetPortHashParams(port LogPort, p PortParams) error {
	const op = "sx_api_router_ecmp_port_hash_params_set"
	if err := m.call(op); err != nil {
		return err
	}
	if rc, ok := m.PortFails[port]; ok && rc != 0 {
		return &StatusError{Op: op, Code: rc}
	}
	m.PortHash[port] = p
	return nil
}

func (m *MemSession) Ports() ([]Port, error) {
	if err := m.call("sx_api_port_device_get"); err != nil {
		return nil, err
	}
	return m.PortList, nil
}

func (m *MemSession) Close() error {
	if err := m.call("sx_api_close"); err != nil {
		return err
	}
	m.closed = true
	return nil
}
