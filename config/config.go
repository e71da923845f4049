// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package config handles the configuration files of the ECMP hash utilities: the YAML settings
// file, the JSON hash document, the legacy flat field list and the port name map.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	DefaultSettingsFile = "/etc/sx_ecmp_hash/settings.yml"
	DefaultLockFile     = "/var/run/sx_ecmp_hash.lock"
	DefaultPortNameMap  = "/etc/sx_ecmp_hash/port-name-map"
)

// Conf holds the settings shared by both utilities.
type Conf struct {
	SDK         SDKConf
	Logging     LoggingConf
	PortNameMap string `yaml:"port_name_map"`
	InfluxDB    []InfluxDBConf
}

func (conf *Conf) validate() error {
	if conf.SDK.DeviceID == 0 {
		return fmt.Errorf("sdk.device_id must be greater than zero")
	}

	if conf.SDK.LockFile != "" {
		if err := unix.Access(filepath.Dir(conf.SDK.LockFile), unix.W_OK); err != nil {
			return fmt.Errorf("sdk.lock_file directory: %s", err)
		}
	}

	for _, db := range conf.InfluxDB {
		if db.URL == "" || db.Database == "" {
			return fmt.Errorf("influxdb entries require url and database")
		}
	}

	return nil
}

// SDKConf selects the switch device and the lock serializing SDK sessions.
type SDKConf struct {
	DeviceID uint8  `yaml:"device_id"`
	Swid     uint8  `yaml:"swid"`
	LockFile string `yaml:"lock_file"`
}

// InfluxDBConf holds the configuration values for a single InfluxDB instance receiving apply
// reports.
type InfluxDBConf struct {
	URL             string
	Database        string
	Username        string
	Password        string
	RetentionPolicy string `yaml:"retention_policy"`
}

type LoggingConf struct {
	EnableSyslog bool     `yaml:"enable_syslog"`
	LogLevel     LogLevel `yaml:"log_level"`
}

// LogLevel is a wrapper type for logrus.Level.
type LogLevel logrus.Level

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	return logrus.Level(l).String()
}

// UnmarshalText parses a byte slice value into a logrus.Level value.
func (l *LogLevel) UnmarshalText(text []byte) error {
	level, err := logrus.ParseLevel(string(text))

	if err == nil {
		*l = LogLevel(level)
	}

	return err
}

// DefaultConf returns the settings used when no settings file exists.
func DefaultConf() *Conf {
	return &Conf{
		SDK: SDKConf{
			DeviceID: 1,
			LockFile: DefaultLockFile,
		},
		Logging: LoggingConf{
			LogLevel: LogLevel(logrus.InfoLevel),
		},
		PortNameMap: DefaultPortNameMap,
	}
}

// ReadConfig reads the YAML settings file. A missing file is not an error; the defaults are
// returned instead.
func ReadConfig(configFile string) (*Conf, error) {
	conf := DefaultConf()

	content, err := ioutil.ReadFile(configFile)
	if os.IsNotExist(err) {
		return conf, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "error reading settings file")
	}

	if err := yaml.Unmarshal(content, conf); err != nil {
		return nil, errors.Wrapf(err, "error parsing settings file %s", configFile)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}
