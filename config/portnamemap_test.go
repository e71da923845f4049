// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var (
	// Expected names after parsing port name map
	names = map[string]string{
		"Ethernet0":  "1",
		"Ethernet4":  "2",
		"Ethernet8":  "3s0",
		"Ethernet10": "3s1",
		"uplink 1":   "0x10500",
	}
)

func TestPortNameMap(t *testing.T) {
	n, err := NewPortNameMap("testdata/port-name-map", false)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(n.names, names) {
		t.Fatalf("Parsed map does not match expected: %v", n.names)
	}

	if spec, ok := n.Lookup("Ethernet10"); !ok || spec != "3s1" {
		t.Fail()
	}

	if _, ok := n.Lookup("Ethernet12"); ok {
		t.Fail()
	}
}

func TestPortNameMapMissing(t *testing.T) {
	if _, err := NewPortNameMap("testdata/non-existent", false); err == nil {
		t.Fatal("expected error for missing map file")
	}
}

func TestPortNameMapReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port-name-map")
	if err := ioutil.WriteFile(path, []byte("1 Ethernet0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := NewPortNameMap(path, true)
	if err != nil {
		t.Fatal(err)
	}
	defer n.Close()

	if err := ioutil.WriteFile(path, []byte("1 Ethernet0\n2 Ethernet4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if spec, ok := n.Lookup("Ethernet4"); ok && spec == "2" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("port name map was not reloaded")
}
