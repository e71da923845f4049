// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

func TestMain(m *testing.M) {
	log.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func newDryRun(t *testing.T, ports int) (*App, *ecmp.MemSession) {
	t.Helper()

	a, err := New(Options{
		SettingsFile: filepath.Join(t.TempDir(), "settings.yml"),
		DryRun:       true,
		DryRunPorts:  ports,
		Out:          ioutil.Discard,
	}, func(uint8, uint8) (ecmp.Session, error) {
		t.Fatal("dry run must not open the SDK")
		return nil, nil
	})
	require.NoError(t, err)

	return a, a.Session.(*ecmp.MemSession)
}

func TestApplyFieldList(t *testing.T) {
	a, s := newDryRun(t, 0)
	defer a.Close()

	require.NoError(t, a.ApplyFieldList("testdata/sx_ecmp_hash.conf"))
	assert.Equal(t, ecmp.Bitmask(ecmp.HashSMAC|ecmp.HashDMAC), s.Global.Hash)
}

func TestApplyFieldListFallsBackToDefault(t *testing.T) {
	a, s := newDryRun(t, 0)
	defer a.Close()

	require.NoError(t, a.ApplyFieldList("testdata/missing.conf"))
	assert.Equal(t, ecmp.DefaultGlobalHash, s.Global.Hash)
}

func TestApplyHashConfFile(t *testing.T) {
	a, s := newDryRun(t, 4)
	defer a.Close()

	require.NoError(t, a.ApplyHashConfFile("../config/testdata/sx_ecmp_hash.json"))

	assert.Equal(t, ecmp.Bitmask(ecmp.HashSrcIP|ecmp.HashDstIP|ecmp.HashTCPUDP|ecmp.HashTCPUDPSrcPort|ecmp.HashTCPUDPDstPort), s.Global.Hash)
	require.Len(t, s.PortHash, 4)

	swp2 := s.PortHash[ecmp.LogPort(0x10200)]
	assert.Equal(t, ecmp.HashTypeXOR, swp2.Type)
	assert.Equal(t, uint32(1234), s.PortHash[ecmp.LogPort(0x10400)].Seed)
}

func TestApplyHashConfFileInvalid(t *testing.T) {
	a, s := newDryRun(t, 1)
	defer a.Close()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"router_port_hash": {"swp1": {"hash_field_list": ["BOGUS"]}}}`), 0644))

	err := a.ApplyHashConfFile(path)
	require.Error(t, err)
	assert.Equal(t, -1, ecmp.ExitCode(err))
	assert.Empty(t, s.Calls)
}

func TestApplyHashConfGlobalFailureStops(t *testing.T) {
	a, s := newDryRun(t, 2)
	defer a.Close()

	s.Failures["sx_api_router_ecmp_hash_params_set"] = 4

	conf, err := config.ParseHashConf([]byte(`{
		"router_global_hash": {"ecmp_hash": ["SRC_IP"]},
		"router_port_hash": {"all": {"seed": 1}}
	}`))
	require.NoError(t, err)

	reports, err := a.ApplyHashConf(conf)
	assert.Equal(t, 4, ecmp.ExitCode(err))
	assert.Len(t, reports, 1)
	assert.Empty(t, s.PortHash)
}

func TestApplyHashConfPortsOnly(t *testing.T) {
	a, s := newDryRun(t, 2)
	defer a.Close()

	s.PortFails[ecmp.LogPort(0x10100)] = 9

	conf, err := config.ParseHashConf([]byte(`{"router_port_hash": {"all": {"ecmp_hash_type": "XOR"}}}`))
	require.NoError(t, err)

	reports, err := a.ApplyHashConf(conf)
	assert.Equal(t, 9, ecmp.ExitCode(err))
	assert.Len(t, reports, 2)
	assert.Contains(t, s.PortHash, ecmp.LogPort(0x10200))
	assert.NotContains(t, s.Calls, "sx_api_router_ecmp_hash_params_get")
}

func TestNewDefaultPortNameMap(t *testing.T) {
	a, _ := newDryRun(t, 2)
	defer a.Close()

	assert.Equal(t, config.DefaultPortNameMap, a.Conf.PortNameMap)
	if _, err := os.Stat(config.DefaultPortNameMap); os.IsNotExist(err) {
		assert.Nil(t, a.Aliases, "a missing default map is not an error")
	}
}

func TestApplyHashConfPortNameMap(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, ioutil.WriteFile(settings, []byte("port_name_map: ../config/testdata/port-name-map\n"), 0644))

	a, err := New(Options{SettingsFile: settings, DryRun: true, DryRunPorts: 4, Out: ioutil.Discard}, nil)
	require.NoError(t, err)
	defer a.Close()
	require.NotNil(t, a.Aliases)

	s := a.Session.(*ecmp.MemSession)

	conf, err := config.ParseHashConf([]byte(`{"router_port_hash": {"Ethernet4": {"seed": 5}}}`))
	require.NoError(t, err)

	_, err = a.ApplyHashConf(conf)
	require.NoError(t, err)
	require.Len(t, s.PortHash, 1)
	assert.Equal(t, uint32(5), s.PortHash[ecmp.LogPort(0x10200)].Seed, "Ethernet4 is front panel port 2")

	// Without the map, a SONiC name is not taken for a label.
	a.Aliases = nil
	conf, err = config.ParseHashConf([]byte(`{"router_port_hash": {"Ethernet3": {"seed": 6}}}`))
	require.NoError(t, err)

	_, err = a.ApplyHashConf(conf)
	assert.Equal(t, -1, ecmp.ExitCode(err))
	assert.NotContains(t, s.PortHash, ecmp.LogPort(0x10300))
}

// notifySession signals every successful global hash write.
type notifySession struct {
	*ecmp.MemSession
	set chan struct{}
}

func (s *notifySession) SetGlobalHashParams(p ecmp.GlobalParams) error {
	if err := s.MemSession.SetGlobalHashParams(p); err != nil {
		return err
	}
	select {
	case s.set <- struct{}{}:
	default:
	}
	return nil
}

func TestWatchHashConfFileRecoversFromBadFile(t *testing.T) {
	a, mem := newDryRun(t, 1)
	defer a.Close()

	s := &notifySession{MemSession: mem, set: make(chan struct{}, 1)}
	a.Session = s

	path := filepath.Join(t.TempDir(), "sx_ecmp_hash.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"router_global_hash": `), 0644))

	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- a.WatchHashConfFile(path, stop) }()

	// Give the initial run time to fail and the watch to be set up.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"router_global_hash": {"ecmp_hash": ["SMAC"]}}`), 0644))

	select {
	case <-s.set:
	case <-time.After(5 * time.Second):
		t.Fatal("configuration was not re-applied after the file was fixed")
	}

	close(stop)
	require.NoError(t, <-done)
	assert.Equal(t, ecmp.Bitmask(ecmp.HashSMAC), mem.Global.Hash)
}

func TestWatchHashConfFileMissing(t *testing.T) {
	a, _ := newDryRun(t, 1)
	defer a.Close()

	stop := make(chan struct{})
	close(stop)
	assert.Error(t, a.WatchHashConfFile(filepath.Join(t.TempDir(), "missing.json"), stop))
}

func TestNewOpensSession(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yml")
	lockFile := filepath.Join(dir, "sx_ecmp_hash.lock")
	require.NoError(t, ioutil.WriteFile(settings, []byte(fmt.Sprintf("sdk:\n  device_id: 3\n  swid: 1\n  lock_file: %s\n", lockFile)), 0644))

	mem := ecmp.NewMemSession(ecmp.GlobalParams{}, nil)
	var gotDevice, gotSwid uint8

	a, err := New(Options{SettingsFile: settings, Out: ioutil.Discard}, func(device, swid uint8) (ecmp.Session, error) {
		gotDevice, gotSwid = device, swid
		return mem, nil
	})
	require.NoError(t, err)

	assert.Equal(t, uint8(3), gotDevice)
	assert.Equal(t, uint8(1), gotSwid)
	assert.FileExists(t, lockFile)

	require.NoError(t, a.Close())
	assert.Contains(t, mem.Calls, "sx_api_close")
}

func TestNewOpenFailure(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, ioutil.WriteFile(settings, []byte("sdk:\n  lock_file: \"\"\n"), 0644))

	_, err := New(Options{SettingsFile: settings}, func(uint8, uint8) (ecmp.Session, error) {
		return nil, &ecmp.StatusError{Op: "sx_api_open", Code: 6}
	})
	assert.Equal(t, 6, ecmp.ExitCode(err))
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	l, err := AcquireLock(path)
	require.NoError(t, err)
	require.NoError(t, l.Release())

	l, err = AcquireLock(path)
	require.NoError(t, err)
	require.NoError(t, l.Release())
}
