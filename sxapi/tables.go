// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Mapping of the ecmp name tables to SDK constants.

package sxapi

// #include <sx/sdk/sx_api_router.h>
import "C"

import (
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

var hashTypeMap = map[ecmp.HashType]uint32{
	ecmp.HashTypeCRC: C.SX_ROUTER_ECMP_HASH_TYPE_CRC,
	ecmp.HashTypeXOR: C.SX_ROUTER_ECMP_HASH_TYPE_XOR,
}

// Global hash bits. The SDK bit values are looked up rather than assumed to match HashBit.
var hashBitMap = map[ecmp.HashBit]uint32{
	ecmp.HashSrcIP:         C.SX_ROUTER_ECMP_HASH_SRC_IP,
	ecmp.HashDstIP:         C.SX_ROUTER_ECMP_HASH_DST_IP,
	ecmp.HashTClass:        C.SX_ROUTER_ECMP_HASH_TCLASS,
	ecmp.HashFlowLabel:     C.SX_ROUTER_ECMP_HASH_FLOW_LABEL,
	ecmp.HashTCPUDP:        C.SX_ROUTER_ECMP_HASH_TCP_UDP,
	ecmp.HashTCPUDPSrcPort: C.SX_ROUTER_ECMP_HASH_TCP_UDP_SRC_PORT,
	ecmp.HashTCPUDPDstPort: C.SX_ROUTER_ECMP_HASH_TCP_UDP_DST_PORT,
	ecmp.HashSMAC:          C.SX_ROUTER_ECMP_HASH_SMAC,
	ecmp.HashDMAC:          C.SX_ROUTER_ECMP_HASH_DMAC,
	ecmp.HashEthType:       C.SX_ROUTER_ECMP_HASH_ETH_TYPE,
	ecmp.HashVID:           C.SX_ROUTER_ECMP_HASH_VID,
	ecmp.HashPCP:           C.SX_ROUTER_ECMP_HASH_PCP,
	ecmp.HashDEI:           C.SX_ROUTER_ECMP_HASH_DEI,
}

var fieldEnableMap = map[ecmp.FieldEnable]C.sx_router_ecmp_hash_field_enable_t{
	ecmp.EnableOuterL2NonIP:     C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_NON_IP,
	ecmp.EnableOuterL2IPv4:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_IPV4,
	ecmp.EnableOuterL2IPv6:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L2_IPV6,
	ecmp.EnableOuterL3NonTCPUDP: C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L3_NON_TCP_UDP,
	ecmp.EnableOuterL3TCPUDP:    C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L3_TCP_UDP,
	ecmp.EnableOuterL4IPv4:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L4_IPV4,
	ecmp.EnableOuterL4IPv6:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L4_IPV6,
	ecmp.EnableInnerL2NonIP:     C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_NON_IP,
	ecmp.EnableInnerL2IPv4:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_IPV4,
	ecmp.EnableInnerL2IPv6:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L2_IPV6,
	ecmp.EnableInnerL3NonTCPUDP: C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L3_NON_TCP_UDP,
	ecmp.EnableInnerL3TCPUDP:    C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L3_TCP_UDP,
	ecmp.EnableInnerL4IPv4:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L4_IPV4,
	ecmp.EnableInnerL4IPv6:      C.SX_ROUTER_ECMP_HASH_FIELD_ENABLE_INNER_L4_IPV6,
}

var fieldMap = map[ecmp.Field]C.sx_router_ecmp_hash_field_t{
	ecmp.FieldOuterSMAC:             C.SX_ROUTER_ECMP_HASH_OUTER_SMAC,
	ecmp.FieldOuterDMAC:             C.SX_ROUTER_ECMP_HASH_OUTER_DMAC,
	ecmp.FieldOuterEtherType:        C.SX_ROUTER_ECMP_HASH_OUTER_ETHERTYPE,
	ecmp.FieldOuterOVID:             C.SX_ROUTER_ECMP_HASH_OUTER_OVID,
	ecmp.FieldOuterOPCP:             C.SX_ROUTER_ECMP_HASH_OUTER_OPCP,
	ecmp.FieldOuterODEI:             C.SX_ROUTER_ECMP_HASH_OUTER_ODEI,
	ecmp.FieldOuterIVID:             C.SX_ROUTER_ECMP_HASH_OUTER_IVID,
	ecmp.FieldOuterIPv4SIPByte0:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_0,
	ecmp.FieldOuterIPv4SIPByte1:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_1,
	ecmp.FieldOuterIPv4SIPByte2:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_2,
	ecmp.FieldOuterIPv4SIPByte3:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_SIP_BYTE_3,
	ecmp.FieldOuterIPv4DIPByte0:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_0,
	ecmp.FieldOuterIPv4DIPByte1:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_1,
	ecmp.FieldOuterIPv4DIPByte2:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_2,
	ecmp.FieldOuterIPv4DIPByte3:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_DIP_BYTE_3,
	ecmp.FieldOuterIPv4Protocol:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV4_PROTOCOL,
	ecmp.FieldOuterIPv6SIPBytes0To7: C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTES_0_TO_7,
	ecmp.FieldOuterIPv6SIPByte8:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_8,
	ecmp.FieldOuterIPv6SIPByte9:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_9,
	ecmp.FieldOuterIPv6SIPByte10:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_10,
	ecmp.FieldOuterIPv6SIPByte11:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_11,
	ecmp.FieldOuterIPv6SIPByte12:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_12,
	ecmp.FieldOuterIPv6SIPByte13:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_13,
	ecmp.FieldOuterIPv6SIPByte14:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_14,
	ecmp.FieldOuterIPv6SIPByte15:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_SIP_BYTE_15,
	ecmp.FieldOuterIPv6DIPBytes0To7: C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTES_0_TO_7,
	ecmp.FieldOuterIPv6DIPByte8:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_8,
	ecmp.FieldOuterIPv6DIPByte9:     C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_9,
	ecmp.FieldOuterIPv6DIPByte10:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_10,
	ecmp.FieldOuterIPv6DIPByte11:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_11,
	ecmp.FieldOuterIPv6DIPByte12:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_12,
	ecmp.FieldOuterIPv6DIPByte13:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_13,
	ecmp.FieldOuterIPv6DIPByte14:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_14,
	ecmp.FieldOuterIPv6DIPByte15:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_DIP_BYTE_15,
	ecmp.FieldOuterIPv6NextHeader:   C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_NEXT_HEADER,
	ecmp.FieldOuterIPv6FlowLabel:    C.SX_ROUTER_ECMP_HASH_OUTER_IPV6_FLOW_LABEL,
	ecmp.FieldOuterTCPUDPSport:      C.SX_ROUTER_ECMP_HASH_OUTER_TCP_UDP_SPORT,
	ecmp.FieldOuterTCPUDPDport:      C.SX_ROUTER_ECMP_HASH_OUTER_TCP_UDP_DPORT,
	ecmp.FieldInnerSMAC:             C.SX_ROUTER_ECMP_HASH_INNER_SMAC,
	ecmp.FieldInnerDMAC:             C.SX_ROUTER_ECMP_HASH_INNER_DMAC,
	ecmp.FieldInnerEtherType:        C.SX_ROUTER_ECMP_HASH_INNER_ETHERTYPE,
	ecmp.FieldInnerIPv4SIPByte0:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_0,
	ecmp.FieldInnerIPv4SIPByte1:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_1,
	ecmp.FieldInnerIPv4SIPByte2:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_2,
	ecmp.FieldInnerIPv4SIPByte3:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_SIP_BYTE_3,
	ecmp.FieldInnerIPv4DIPByte0:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_0,
	ecmp.FieldInnerIPv4DIPByte1:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_1,
	ecmp.FieldInnerIPv4DIPByte2:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_2,
	ecmp.FieldInnerIPv4DIPByte3:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_DIP_BYTE_3,
	ecmp.FieldInnerIPv4Protocol:     C.SX_ROUTER_ECMP_HASH_INNER_IPV4_PROTOCOL,
	ecmp.FieldInnerIPv6SIPBytes0To7: C.SX_ROUTER_ECMP_HASH_INNER_IPV6_SIP_BYTES_0_TO_7,
	ecmp.FieldInnerIPv6DIPBytes0To7: C.SX_ROUTER_ECMP_HASH_INNER_IPV6_DIP_BYTES_0_TO_7,
	ecmp.FieldInnerIPv6NextHeader:   C.SX_ROUTER_ECMP_HASH_INNER_IPV6_NEXT_HEADER,
	ecmp.FieldInnerIPv6FlowLabel:    C.SX_ROUTER_ECMP_HASH_INNER_IPV6_FLOW_LABEL,
	ecmp.FieldInnerTCPUDPSport:      C.SX_ROUTER_ECMP_HASH_INNER_TCP_UDP_SPORT,
	ecmp.FieldInnerTCPUDPDport:      C.SX_ROUTER_ECMP_HASH_INNER_TCP_UDP_DPORT,
}
