// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package app wires settings, logging, the SDK session and report writers together for the
// command line utilities.
package app

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
	"github.com/kvadrage/sx-ecmp-hash/writer"
	"github.com/kvadrage/sx-ecmp-hash/writer/influxdb"
)

// OpenFunc opens an SDK session for the configured device.
type OpenFunc func(deviceID, swid uint8) (ecmp.Session, error)

type Options struct {
	SettingsFile string
	Tag          string // syslog tag
	DryRun       bool
	DryRunPorts  int
	Watch        bool // watch the port name map for changes
	Out          io.Writer
}

// App is one run of a utility: an SDK session guarded by the lock file, plus the writers that
// receive the reports of each configuration run.
type App struct {
	Conf       *config.Conf
	Session    ecmp.Session
	Out        io.Writer
	Aliases    ecmp.Aliases
	lock       *Lock
	nameMap    *config.PortNameMap
	dispatcher *writer.Dispatcher
}

// New reads the settings, configures logging and opens the SDK session. With opts.DryRun set,
// an in-memory session stands in for the SDK and open is never called.
func New(opts Options, open OpenFunc) (*App, error) {
	conf, err := config.ReadConfig(opts.SettingsFile)
	if err != nil {
		return nil, err
	}

	if err := conf.Logging.Apply(opts.Tag); err != nil {
		log.WithError(err).Warn("Cannot enable syslog")
	}

	a := &App{Conf: conf, Out: opts.Out}
	if a.Out == nil {
		a.Out = os.Stdout
	}

	if conf.PortNameMap != "" {
		a.nameMap, err = config.NewPortNameMap(conf.PortNameMap, opts.Watch)
		switch {
		case os.IsNotExist(err):
			log.WithField("file", conf.PortNameMap).Debug("No port name map")
		case err != nil:
			log.WithError(err).WithField("file", conf.PortNameMap).Warn("Cannot read port name map")
		default:
			a.Aliases = a.nameMap
		}
	}

	if opts.DryRun {
		log.Info("[+] Dry run, using in-memory SDK session")
		a.Session = ecmp.NewMemSession(ecmp.GlobalParams{}, ecmp.SyntheticPorts(opts.DryRunPorts))
	} else {
		if unix.Geteuid() != 0 {
			log.Warn("Not running as root, SDK access will probably fail")
		}

		if conf.SDK.LockFile != "" {
			if a.lock, err = AcquireLock(conf.SDK.LockFile); err != nil {
				a.Close()
				return nil, err
			}
		}

		log.Info("[+] opening sdk")
		if a.Session, err = open(conf.SDK.DeviceID, conf.SDK.Swid); err != nil {
			log.WithError(err).Error("[-] Error opening SDK API")
			a.Close()
			return nil, err
		}
	}

	writers := make([]writer.ReportWriter, 0, len(conf.InfluxDB))
	for _, db := range conf.InfluxDB {
		writers = append(writers, &influxdb.InfluxDBWriter{Config: db})
	}
	a.dispatcher = writer.NewDispatcher(writers)

	return a, nil
}

// Report hands the reports of one configuration run to the writers.
func (a *App) Report(reports []ecmp.Report) {
	if len(reports) > 0 {
		a.dispatcher.Send(reports)
	}
}

// Close flushes the writers, closes the SDK session and releases the lock.
func (a *App) Close() error {
	var err error

	if a.dispatcher != nil {
		a.dispatcher.Close()
	}

	if a.Session != nil {
		log.Info("[+] closing sdk")
		err = a.Session.Close()
	}

	if a.nameMap != nil {
		a.nameMap.Close()
	}

	if a.lock != nil {
		if lerr := a.lock.Release(); lerr != nil && err == nil {
			err = lerr
		}
	}

	return err
}
