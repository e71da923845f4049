// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package sxapi is a cgo wrapper around the Mellanox SX SDK (libsxapi). It implements
// ecmp.Session on top of the router ECMP hash and port device APIs.
// Note: The SDK talks to the sx_sdk daemon over a local socket, which is usually only
// accessible to root.
package sxapi

// #cgo LDFLAGS: -lsxapi
// #include <stdlib.h>
// #include <sx/sdk/sx_api.h>
// #include <sx/sdk/sx_api_init.h>
// #include <sx/sdk/sx_api_port.h>
// #include <sx/sdk/sx_api_router.h>
// #include <sx/sdk/sx_status.h>
//
// static const char *sx_status_msg(sx_status_t rc) {
//     return SX_STATUS_MSG(rc);
// }
//
// static void ecmp_hash_params_fill(sx_router_ecmp_hash_params_t *p, uint32_t type,
//                                   int symmetric, uint32_t seed, uint32_t hash) {
//     p->ecmp_hash_type = (sx_router_ecmp_hash_type_t)type;
//     p->symmetric_hash = symmetric ? 1 : 0;
//     p->seed = seed;
//     p->ecmp_hash = hash;
// }
//
// static void ecmp_port_hash_params_fill(sx_router_ecmp_port_hash_params_t *p, uint32_t type,
//                                        int symmetric, uint32_t seed) {
//     p->ecmp_hash_type = (sx_router_ecmp_hash_type_t)type;
//     p->symmetric_hash = symmetric ? 1 : 0;
//     p->seed = seed;
// }
import "C"

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

// Session is an open SDK handle for one switch device.
type Session struct {
	handle   C.sx_api_handle_t
	deviceID uint8
	swid     uint8
}

func statusError(op string, rc C.sx_status_t) error {
	if rc == C.SX_STATUS_SUCCESS {
		return nil
	}

	return &ecmp.StatusError{
		Op:   op,
		Code: int(rc),
		Msg:  C.GoString(C.sx_status_msg(rc)),
	}
}

// Open wraps sx_api_open(). deviceID and swid select the device whose ports are listed by
// Ports.
func Open(deviceID, swid uint8) (*Session, error) {
	s := &Session{deviceID: deviceID, swid: swid}

	if err := statusError("sx_api_open", C.sx_api_open(nil, &s.handle)); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"device_id": deviceID, "swid": swid}).Debug("SDK handle opened")
	return s, nil
}

// Close wraps sx_api_close().
func (s *Session) Close() error {
	return statusError("sx_api_close", C.sx_api_close(&s.handle))
}

// GlobalHashParams wraps sx_api_router_ecmp_hash_params_get().
func (s *Session) GlobalHashParams() (ecmp.GlobalParams, error) {
	var params C.sx_router_ecmp_hash_params_t

	rc := C.sx_api_router_ecmp_hash_params_get(s.handle, &params)
	if err := statusError("sx_api_router_ecmp_hash_params_get", rc); err != nil {
		return ecmp.GlobalParams{}, err
	}

	// Values without a name are carried through so that writing the struct back leaves them
	// untouched.
	p := ecmp.GlobalParams{
		Type:      ecmp.DecodeHashType(uint32(params.ecmp_hash_type), hashTypeMap),
		Symmetric: params.symmetric_hash != 0,
		Seed:      uint32(params.seed),
		Hash:      ecmp.DecodeBitmask(uint32(params.ecmp_hash), hashBitMap),
	}

	if _, ok := hashTypeMap[p.Type]; !ok {
		log.WithField("hash_type", p.Type).Warn("Unknown SDK ECMP hash type")
	}
	if u := p.Hash.Unknown(); u != 0 {
		log.WithField("bits", u).Warn("Unknown SDK ECMP hash bits")
	}

	return p, nil
}

// SetGlobalHashParams wraps sx_api_router_ecmp_hash_params_set().
func (s *Session) SetGlobalHashParams(p ecmp.GlobalParams) error {
	var params C.sx_router_ecmp_hash_params_t

	hashType, ok := p.Type.Encode(hashTypeMap)
	if !ok {
		return fmt.Errorf("unsupported ECMP hash type %s", p.Type)
	}

	C.ecmp_hash_params_fill(&params, C.uint32_t(hashType), boolToC(p.Symmetric),
		C.uint32_t(p.Seed), C.uint32_t(p.Hash.Encode(hashBitMap)))

	return statusError("sx_api_router_ecmp_hash_params_set",
		C.sx_api_router_ecmp_hash_params_set(s.handle, &params))
}

// SetPortHashParams wraps sx_api_router_ecmp_port_hash_params_set() with SX_ACCESS_CMD_SET.
func (s *Session) SetPortHashParams(port ecmp.LogPort, p ecmp.PortParams) error {
	var (
		params  C.sx_router_ecmp_port_hash_params_t
		enPtr   *C.sx_router_ecmp_hash_field_enable_t
		fieldPt *C.sx_router_ecmp_hash_field_t
	)

	hashType, ok := p.Type.Encode(hashTypeMap)
	if !ok {
		return fmt.Errorf("unsupported ECMP hash type %s", p.Type)
	}

	C.ecmp_port_hash_params_fill(&params, C.uint32_t(hashType), boolToC(p.Symmetric), C.uint32_t(p.Seed))

	enables := make([]C.sx_router_ecmp_hash_field_enable_t, 0, len(p.Enables))
	for _, e := range p.Enables {
		v, ok := fieldEnableMap[e]
		if !ok {
			return fmt.Errorf("unsupported ECMP hash field enable %s", e)
		}
		enables = append(enables, v)
	}

	fields := make([]C.sx_router_ecmp_hash_field_t, 0, len(p.Fields))
	for _, f := range p.Fields {
		v, ok := fieldMap[f]
		if !ok {
			return fmt.Errorf("unsupported ECMP hash field %s", f)
		}
		fields = append(fields, v)
	}

	// The lists hold no Go pointers, so they can be handed to C directly.
	if len(enables) > 0 {
		enPtr = &enables[0]
	}
	if len(fields) > 0 {
		fieldPt = &fields[0]
	}

	rc := C.sx_api_router_ecmp_port_hash_params_set(s.handle, C.SX_ACCESS_CMD_SET,
		C.sx_port_log_id_t(port), &params,
		enPtr, C.uint32_t(len(enables)), fieldPt, C.uint32_t(len(fields)))

	return statusError("sx_api_router_ecmp_port_hash_params_set", rc)
}

// Ports wraps sx_api_port_device_get(). Only external (front panel) ports are returned.
func (s *Session) Ports() ([]ecmp.Port, error) {
	var count C.uint32_t

	// A NULL attribute list queries the number of ports.
	rc := C.sx_api_port_device_get(s.handle, C.sx_device_id_t(s.deviceID), C.sx_swid_t(s.swid), nil, &count)
	if err := statusError("sx_api_port_device_get", rc); err != nil {
		return nil, err
	}

	if count == 0 {
		return []ecmp.Port{}, nil
	}

	attrs := make([]C.sx_port_attributes_t, int(count))
	rc = C.sx_api_port_device_get(s.handle, C.sx_device_id_t(s.deviceID), C.sx_swid_t(s.swid), &attrs[0], &count)
	if err := statusError("sx_api_port_device_get", rc); err != nil {
		return nil, err
	}

	ports := make([]ecmp.Port, 0, int(count))
	for _, attr := range attrs[:int(count)] {
		if attr.port_mode != C.SX_PORT_MODE_EXTERNAL {
			continue
		}

		ports = append(ports, ecmp.Port{
			LogPort: ecmp.LogPort(attr.log_port),
			Label:   int(attr.port_mapping.module_port) + 1,
		})
	}

	log.WithFields(log.Fields{"ports": len(ports), "total": int(count)}).Debug("Port device list retrieved")
	return ports, nil
}

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
