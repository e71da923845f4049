// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"errors"
	"fmt"
)

// GlobalParams mirrors sx_router_ecmp_hash_params_t.
type GlobalParams struct {
	Type      HashType
	Symmetric bool
	Seed      uint32
	Hash      Bitmask
}

// PortParams holds the per-port hash configuration passed to
// sx_api_router_ecmp_port_hash_params_set.
type PortParams struct {
	Type      HashType
	Symmetric bool
	Seed      uint32
	Enables   []FieldEnable
	Fields    []Field
}

// LogPort is an SDK logical port id.
type LogPort uint32

func (p LogPort) String() string {
	return fmt.Sprintf("%#x", uint32(p))
}

// Port describes one external switch port as reported by the SDK.
type Port struct {
	LogPort LogPort
	Label   int // front panel label, i.e. module port + 1
	Lane    int // index among the ports sharing a module (split ports), zero otherwise
}

// Session is an open handle to the switch SDK. Implementations are not safe for concurrent use.
type Session interface {
	GlobalHashParams() (GlobalParams, error)
	SetGlobalHashParams(GlobalParams) error
	SetPortHashParams(port LogPort, params PortParams) error
	Ports() ([]Port, error)
	Close() error
}

// StatusError reports a non-zero SDK return code.
type StatusError struct {
	Op   string
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s (%d)", e.Op, e.Msg, e.Code)
	}
	return fmt.Sprintf("%s: %d", e.Op, e.Code)
}

// ExitCode converts the outcome of a run into a process exit status: zero on success, the SDK
// return code for SDK failures and -1 for anything else (configuration or parse errors).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}

	return -1
}
