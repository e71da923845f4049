// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package ecmp holds the ECMP hash model shared by both utilities: the name tables for global
// hash bits, per-port field enables and field selectors, the Session contract that the SX SDK
// binding implements, and the logic that applies a configuration through a Session.
package ecmp

import (
	"fmt"
	"strings"
)

// HashBit is a single bit of the global router ECMP hash bitmask.
type HashBit uint32

// Global hash bits, in the order the SDK defines them.
const (
	HashSrcIP HashBit = 1 << iota
	HashDstIP
	HashTClass
	HashFlowLabel
	HashTCPUDP
	HashTCPUDPSrcPort
	HashTCPUDPDstPort
	HashSMAC
	HashDMAC
	HashEthType
	HashVID
	HashPCP
	HashDEI
)

const (
	hashBitPrefix   = "SX_ROUTER_ECMP_HASH_"
	hashTypePrefix  = "SX_ROUTER_ECMP_HASH_TYPE_"
	fieldEnPrefix   = "SX_ROUTER_ECMP_HASH_FIELD_ENABLE_"
	fieldNamePrefix = "SX_ROUTER_ECMP_HASH_"
)

// HashBits lists every known global hash bit with its SDK constant name. Output that walks the
// bitmask bit by bit follows this order.
var HashBits = [...]struct {
	Name string
	Bit  HashBit
}{
	{"SX_ROUTER_ECMP_HASH_SRC_IP", HashSrcIP},
	{"SX_ROUTER_ECMP_HASH_DST_IP", HashDstIP},
	{"SX_ROUTER_ECMP_HASH_TCLASS", HashTClass},
	{"SX_ROUTER_ECMP_HASH_FLOW_LABEL", HashFlowLabel},
	{"SX_ROUTER_ECMP_HASH_TCP_UDP", HashTCPUDP},
	{"SX_ROUTER_ECMP_HASH_TCP_UDP_SRC_PORT", HashTCPUDPSrcPort},
	{"SX_ROUTER_ECMP_HASH_TCP_UDP_DST_PORT", HashTCPUDPDstPort},
	{"SX_ROUTER_ECMP_HASH_SMAC", HashSMAC},
	{"SX_ROUTER_ECMP_HASH_DMAC", HashDMAC},
	{"SX_ROUTER_ECMP_HASH_ETH_TYPE", HashEthType},
	{"SX_ROUTER_ECMP_HASH_VID", HashVID},
	{"SX_ROUTER_ECMP_HASH_PCP", HashPCP},
	{"SX_ROUTER_ECMP_HASH_DEI", HashDEI},
}

// DefaultGlobalHash is applied by the flat-list utility when no configuration can be read.
const DefaultGlobalHash = Bitmask(HashSrcIP | HashDstIP | HashTCPUDP | HashTCPUDPSrcPort |
	HashTCPUDPDstPort | HashSMAC | HashDMAC | HashEthType | HashVID)

var hashBitNames = func() map[string]HashBit {
	m := make(map[string]HashBit, len(HashBits))
	for _, b := range HashBits {
		m[b.Name] = b.Bit
	}
	return m
}()

func (b HashBit) String() string {
	for _, hb := range HashBits {
		if hb.Bit == b {
			return hb.Name
		}
	}
	return fmt.Sprintf("undefined (%#x)", uint32(b))
}

// ParseHashBit maps a global hash bit name to its bit. Both the full SDK constant name and the
// bare suffix (e.g. "SRC_IP") are accepted, in any case.
func ParseHashBit(name string) (HashBit, error) {
	if b, ok := hashBitNames[canonicalName(hashBitPrefix, name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown ECMP hash field %q", name)
}

// Bitmask is the global router ECMP hash value, an OR of HashBit values.
type Bitmask uint32

// Has reports whether bit b is set.
func (m Bitmask) Has(b HashBit) bool {
	return uint32(m)&uint32(b) != 0
}

// Fields returns the known bits set in m, lowest bit first.
func (m Bitmask) Fields() []HashBit {
	fields := []HashBit{}
	for x := uint32(m) & uint32(allHashBits); x != 0; x &^= lowestBit(x) {
		fields = append(fields, HashBit(lowestBit(x)))
	}
	return fields
}

// Unknown returns the bits of m that have no name in HashBits.
func (m Bitmask) Unknown() Bitmask {
	return m &^ allHashBits
}

func (m Bitmask) String() string {
	names := []string{}
	for _, b := range m.Fields() {
		names = append(names, strings.TrimPrefix(b.String(), hashBitPrefix))
	}
	for u := uint32(m.Unknown()); u != 0; u &^= lowestBit(u) {
		names = append(names, fmt.Sprintf("BIT%d", fls(lowestBit(u))-1))
	}
	return strings.Join(names, "|")
}

// Encode translates m into a foreign bit encoding, given the value of each named bit. Bits of m
// without a name are passed through unchanged.
func (m Bitmask) Encode(table map[HashBit]uint32) uint32 {
	v := uint32(m.Unknown())
	for _, b := range m.Fields() {
		v |= table[b]
	}
	return v
}

// DecodeBitmask is the inverse of Bitmask.Encode. Bits of v that appear in no table entry are
// kept as they are.
func DecodeBitmask(v uint32, table map[HashBit]uint32) Bitmask {
	var (
		m     Bitmask
		known uint32
	)
	for b, c := range table {
		known |= c
		if v&c != 0 {
			m |= Bitmask(b)
		}
	}
	return m | Bitmask(v&^known)
}

// ParseBitmask ORs together the named global hash bits.
func ParseBitmask(names []string) (Bitmask, error) {
	var m Bitmask
	for _, name := range names {
		b, err := ParseHashBit(name)
		if err != nil {
			return 0, err
		}
		m |= Bitmask(b)
	}
	return m, nil
}

var allHashBits = func() Bitmask {
	var m Bitmask
	for _, b := range HashBits {
		m |= Bitmask(b.Bit)
	}
	return m
}()

// HashType selects the hash function applied to the selected fields.
type HashType int

const (
	HashTypeCRC HashType = iota
	HashTypeXOR
)

// rawHashType marks a hash type read from the SDK that has no name here. The low bits hold the
// SDK value so it can be written back unchanged.
const rawHashType HashType = 1 << 30

var hashTypeNames = [...]string{
	"SX_ROUTER_ECMP_HASH_TYPE_CRC",
	"SX_ROUTER_ECMP_HASH_TYPE_XOR",
}

func (t HashType) String() string {
	if t&rawHashType != 0 {
		return fmt.Sprintf("undefined (%d)", int(t&^rawHashType))
	}
	if t >= 0 && int(t) < len(hashTypeNames) {
		return hashTypeNames[t]
	}
	return fmt.Sprintf("undefined (%d)", int(t))
}

// Encode returns the SDK value of t given the value of each named type. ok is false if t is
// neither in table nor was read from the SDK by DecodeHashType.
func (t HashType) Encode(table map[HashType]uint32) (v uint32, ok bool) {
	if t&rawHashType != 0 {
		return uint32(t &^ rawHashType), true
	}
	v, ok = table[t]
	return v, ok
}

// DecodeHashType maps an SDK hash type value back through table. Values missing from table are
// kept verbatim.
func DecodeHashType(v uint32, table map[HashType]uint32) HashType {
	for t, c := range table {
		if c == v {
			return t
		}
	}
	return rawHashType | HashType(v)
}

// ParseHashType accepts "CRC", "XOR" or the full SDK constant name.
func ParseHashType(name string) (HashType, error) {
	full := canonicalName(hashTypePrefix, name)
	for i, n := range hashTypeNames {
		if n == full {
			return HashType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ECMP hash type %q", name)
}

// canonicalName upper-cases name and prepends prefix unless it is already present.
func canonicalName(prefix, name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
