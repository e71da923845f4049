// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(ioutil.Discard)
	os.Exit(m.Run())
}

func TestReadConfig(t *testing.T) {
	conf, err := ReadConfig("testdata/settings.yml")
	require.NoError(t, err)

	assert.Equal(t, uint8(2), conf.SDK.DeviceID)
	assert.Equal(t, "", conf.SDK.LockFile)
	assert.Equal(t, LogLevel(logrus.DebugLevel), conf.Logging.LogLevel)
	assert.Equal(t, "testdata/port-name-map", conf.PortNameMap)
	require.Len(t, conf.InfluxDB, 1)
	assert.Equal(t, "switches", conf.InfluxDB[0].Database)
	assert.Equal(t, "autogen", conf.InfluxDB[0].RetentionPolicy)
}

func TestReadConfigMissingFile(t *testing.T) {
	conf, err := ReadConfig("testdata/does-not-exist.yml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConf(), conf)
	assert.Equal(t, DefaultPortNameMap, conf.PortNameMap)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []string{
		"logging:\n  log_level: chatty\n",
		"sdk:\n  device_id: 0\n",
		"influxdb:\n  - url: http://localhost:8086\n",
		"sdk: [1, 2\n",
	}

	for i, content := range tests {
		path := filepath.Join(dir, "settings.yml")
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

		_, err := ReadConfig(path)
		assert.Error(t, err, "case %d", i)
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "warning", LogLevel(logrus.WarnLevel).String())
}
