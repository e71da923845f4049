// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Per-port hash field enables and field selectors.

package ecmp

import (
	"fmt"
)

// FieldEnable enables hashing for one class of packets. Fields selected in a port's field list
// only contribute to the hash for packet classes that are enabled.
type FieldEnable int

const (
	EnableOuterL2NonIP FieldEnable = iota
	EnableOuterL2IPv4
	EnableOuterL2IPv6
	EnableOuterL3NonTCPUDP
	EnableOuterL3TCPUDP
	EnableOuterL4IPv4
	EnableOuterL4IPv6
	EnableInnerL2NonIP
	EnableInnerL2IPv4
	EnableInnerL2IPv6
	EnableInnerL3NonTCPUDP
	EnableInnerL3TCPUDP
	EnableInnerL4IPv4
	EnableInnerL4IPv6

	numFieldEnables
)

var fieldEnableNames = [numFieldEnables]string{
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_NON_IP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_IPV4",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_IPV6",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L3_NON_TCP_UDP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L3_TCP_UDP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L4_IPV4",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L4_IPV6",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_NON_IP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_IPV4",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_IPV6",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L3_NON_TCP_UDP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L3_TCP_UDP",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L4_IPV4",
	"SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L4_IPV6",
}

func (e FieldEnable) String() string {
	if e >= 0 && e < numFieldEnables {
		return fieldEnableNames[e]
	}
	return fmt.Sprintf("undefined (%d)", int(e))
}

// ParseFieldEnable maps a field enable name, with or without the SDK prefix, to its value.
func ParseFieldEnable(name string) (FieldEnable, error) {
	full := canonicalName(fieldEnPrefix, name)
	for i, n := range fieldEnableNames {
		if n == full {
			return FieldEnable(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ECMP hash field enable %q", name)
}

// Field selects one packet header field as hash input.
type Field int

const (
	FieldOuterSMAC Field = iota
	FieldOuterDMAC
	FieldOuterEtherType
	FieldOuterOVID
	FieldOuterOPCP
	FieldOuterODEI
	FieldOuterIVID
	FieldOuterIPv4SIPByte0
	FieldOuterIPv4SIPByte1
	FieldOuterIPv4SIPByte2
	FieldOuterIPv4SIPByte3
	FieldOuterIPv4DIPByte0
	FieldOuterIPv4DIPByte1
	FieldOuterIPv4DIPByte2
	FieldOuterIPv4DIPByte3
	FieldOuterIPv4Protocol
	FieldOuterIPv6SIPBytes0To7
	FieldOuterIPv6SIPByte8
	FieldOuterIPv6SIPByte9
	FieldOuterIPv6SIPByte10
	FieldOuterIPv6SIPByte11
	FieldOuterIPv6SIPByte12
	FieldOuterIPv6SIPByte13
	FieldOuterIPv6SIPByte14
	FieldOuterIPv6SIPByte15
	FieldOuterIPv6DIPBytes0To7
	FieldOuterIPv6DIPByte8
	FieldOuterIPv6DIPByte9
	FieldOuterIPv6DIPByte10
	FieldOuterIPv6DIPByte11
	FieldOuterIPv6DIPByte12
	FieldOuterIPv6DIPByte13
	FieldOuterIPv6DIPByte14
	FieldOuterIPv6DIPByte15
	FieldOuterIPv6NextHeader
	FieldOuterIPv6FlowLabel
	FieldOuterTCPUDPSport
	FieldOuterTCPUDPDport
	FieldInnerSMAC
	FieldInnerDMAC
	FieldInnerEtherType
	FieldInnerIPv4SIPByte0
	FieldInnerIPv4SIPByte1
	FieldInnerIPv4SIPByte2
	FieldInnerIPv4SIPByte3
	FieldInnerIPv4DIPByte0
	FieldInnerIPv4DIPByte1
	FieldInnerIPv4DIPByte2
	FieldInnerIPv4DIPByte3
	FieldInnerIPv4Protocol
	FieldInnerIPv6SIPBytes0To7
	FieldInnerIPv6DIPBytes0To7
	FieldInnerIPv6NextHeader
	FieldInnerIPv6FlowLabel
	FieldInnerTCPUDPSport
	FieldInnerTCPUDPDport

	numFields
)

var fieldNames = [numFields]string{
	"SX_ROUTER_ECMP_HASH_OUTER_SMAC",
	"SX_ROUTER_ECMP_HASH_OUTER_DMAC",
	"SX_ROUTER_ECMP_HASH_OUTER_ETHERTYPE",
	"SX_ROUTER_ECMP_HASH_OUTER_OVID",
	"SX_ROUTER_ECMP_HASH_OUTER_OPCP",
	"SX_ROUTER_ECMP_HASH_OUTER_ODEI",
	"SX_ROUTER_ECMP_HASH_OUTER_IVID",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_0",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_1",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_2",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_3",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_0",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_1",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_2",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_3",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV4_PROTOCOL",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTES_0_TO_7",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_8",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_9",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_10",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_11",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_12",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_13",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_14",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_15",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTES_0_TO_7",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_8",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_9",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_10",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_11",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_12",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_13",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_14",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_15",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_NEXT_HEADER",
	"SX_ROUTER_ECMP_HASH_OUTER_IPV6_FLOW_LABEL",
	"SX_ROUTER_ECMP_HASH_OUTER_TCP_UDP_SPORT",
	"SX_ROUTER_ECMP_HASH_OUTER_TCP_UDP_DPORT",
	"SX_ROUTER_ECMP_HASH_INNER_SMAC",
	"SX_ROUTER_ECMP_HASH_INNER_DMAC",
	"SX_ROUTER_ECMP_HASH_INNER_ETHERTYPE",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_0",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_1",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_2",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_3",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_0",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_1",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_2",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_3",
	"SX_ROUTER_ECMP_HASH_INNER_IPV4_PROTOCOL",
	"SX_ROUTER_ECMP_HASH_INNER_IPV6_SIP_BYTES_0_TO_7",
	"SX_ROUTER_ECMP_HASH_INNER_IPV6_DIP_BYTES_0_TO_7",
	"SX_ROUTER_ECMP_HASH_INNER_IPV6_NEXT_HEADER",
	"SX_ROUTER_ECMP_HASH_INNER_IPV6_FLOW_LABEL",
	"SX_ROUTER_ECMP_HASH_INNER_TCP_UDP_SPORT",
	"SX_ROUTER_ECMP_HASH_INNER_TCP_UDP_DPORT",
}

func (f Field) String() string {
	if f >= 0 && f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("undefined (%d)", int(f))
}

// ParseField maps a hash field name, with or without the SDK prefix, to its value.
func ParseField(name string) (Field, error) {
	full := canonicalName(fieldNamePrefix, name)
	for i, n := range fieldNames {
		if n == full {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ECMP hash field %q", name)
}

// ParseFieldEnables parses a list of field enable names, keeping order and dropping duplicates.
func ParseFieldEnables(names []string) ([]FieldEnable, error) {
	enables := make([]FieldEnable, 0, len(names))
	seen := make(map[FieldEnable]bool)

	for _, name := range names {
		e, err := ParseFieldEnable(name)
		if err != nil {
			return nil, err
		}
		if !seen[e] {
			seen[e] = true
			enables = append(enables, e)
		}
	}

	return enables, nil
}

// ParseFields parses a list of hash field names, keeping order and dropping duplicates.
func ParseFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	seen := make(map[Field]bool)

	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}

	return fields, nil
}
