// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlobalHash(t *testing.T) {
	assert.Equal(t, Bitmask(0x7f3), DefaultGlobalHash)
	assert.False(t, DefaultGlobalHash.Has(HashTClass))
	assert.False(t, DefaultGlobalHash.Has(HashFlowLabel))
	assert.False(t, DefaultGlobalHash.Has(HashPCP))
	assert.False(t, DefaultGlobalHash.Has(HashDEI))
	assert.True(t, DefaultGlobalHash.Has(HashVID))
}

func TestParseHashBit(t *testing.T) {
	tests := []struct {
		name string
		want HashBit
	}{
		{"SX_ROUTER_ECMP_HASH_SRC_IP", HashSrcIP},
		{"src_ip", HashSrcIP},
		{" TCP_UDP_DST_PORT ", HashTCPUDPDstPort},
		{"sx_router_ecmp_hash_dei", HashDEI},
	}

	for _, tt := range tests {
		got, err := ParseHashBit(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseHashBit("SX_ROUTER_ECMP_HASH_BOGUS")
	assert.Error(t, err)
}

func TestBitmaskFields(t *testing.T) {
	m := Bitmask(HashDstIP | HashSMAC | HashDEI)
	assert.Equal(t, []HashBit{HashDstIP, HashSMAC, HashDEI}, m.Fields())
	assert.Equal(t, "DST_IP|SMAC|DEI", m.String())

	m |= 1 << 20
	assert.Equal(t, Bitmask(1<<20), m.Unknown())
	assert.Equal(t, "DST_IP|SMAC|DEI|BIT20", m.String())
	assert.Len(t, m.Fields(), 3)

	m = Bitmask(HashSrcIP) | 1<<20 | 1<<25
	assert.Equal(t, Bitmask(1<<20|1<<25), m.Unknown())
	assert.Equal(t, "SRC_IP|BIT20|BIT25", m.String())
}

// shiftedBits encodes every hash bit one position higher, so the tests notice a missing
// translation.
var shiftedBits = func() map[HashBit]uint32 {
	m := make(map[HashBit]uint32, len(HashBits))
	for _, b := range HashBits {
		m[b.Bit] = uint32(b.Bit) << 1
	}
	return m
}()

func TestBitmaskEncode(t *testing.T) {
	m := Bitmask(HashSrcIP|HashDEI) | 1<<20 | 1<<25
	v := m.Encode(shiftedBits)
	assert.Equal(t, uint32(HashSrcIP)<<1|uint32(HashDEI)<<1|1<<20|1<<25, v)

	back := DecodeBitmask(v, shiftedBits)
	assert.Equal(t, m, back, "bits without a name survive the round trip")
	assert.Equal(t, "SRC_IP|DEI|BIT20|BIT25", back.String())

	assert.Equal(t, Bitmask(0), DecodeBitmask(0, shiftedBits))
}

func TestHashTypeEncode(t *testing.T) {
	table := map[HashType]uint32{HashTypeCRC: 0, HashTypeXOR: 1}

	assert.Equal(t, HashTypeXOR, DecodeHashType(1, table))

	raw := DecodeHashType(7, table)
	assert.Equal(t, "undefined (7)", raw.String())
	v, ok := raw.Encode(table)
	require.True(t, ok, "a hash type read from the SDK can be written back")
	assert.Equal(t, uint32(7), v)

	v, ok = HashTypeCRC.Encode(table)
	require.True(t, ok)
	assert.Equal(t, uint32(0), v)

	_, ok = HashType(5).Encode(table)
	assert.False(t, ok)
}

func TestParseBitmask(t *testing.T) {
	m, err := ParseBitmask([]string{"SRC_IP", "SX_ROUTER_ECMP_HASH_DST_IP", "src_ip"})
	require.NoError(t, err)
	assert.Equal(t, Bitmask(HashSrcIP|HashDstIP), m)

	_, err = ParseBitmask([]string{"SRC_IP", "nope"})
	assert.Error(t, err)
}

func TestParseHashType(t *testing.T) {
	ht, err := ParseHashType("xor")
	require.NoError(t, err)
	assert.Equal(t, HashTypeXOR, ht)

	ht, err = ParseHashType("SX_ROUTER_ECMP_HASH_TYPE_CRC")
	require.NoError(t, err)
	assert.Equal(t, HashTypeCRC, ht)
	assert.Equal(t, "SX_ROUTER_ECMP_HASH_TYPE_CRC", ht.String())

	_, err = ParseHashType("md5")
	assert.Error(t, err)
	assert.Equal(t, "undefined (7)", HashType(7).String())
}

func TestParseFieldLists(t *testing.T) {
	enables, err := ParseFieldEnables([]string{"OUTER_L2_IPV4", "SX_ROUTER_ECMP_HASH_FIELD_ENABLE_OUTER_L3_TCP_UDP", "outer_l2_ipv4"})
	require.NoError(t, err)
	assert.Equal(t, []FieldEnable{EnableOuterL2IPv4, EnableOuterL3TCPUDP}, enables)

	fields, err := ParseFields([]string{"OUTER_SMAC", "SX_ROUTER_ECMP_HASH_OUTER_TCP_UDP_DPORT", "inner_ipv6_flow_label"})
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldOuterSMAC, FieldOuterTCPUDPDport, FieldInnerIPv6FlowLabel}, fields)

	_, err = ParseFields([]string{"OUTER_SMAC", "OUTER_NOTHING"})
	assert.Error(t, err)

	_, err = ParseFieldEnables([]string{"L7"})
	assert.Error(t, err)
}

func TestFieldNameTables(t *testing.T) {
	seen := map[string]bool{}
	for f := Field(0); f < numFields; f++ {
		name := f.String()
		assert.NotContains(t, seen, name)
		seen[name] = true

		parsed, err := ParseField(name)
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	for e := FieldEnable(0); e < numFieldEnables; e++ {
		parsed, err := ParseFieldEnable(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
}
