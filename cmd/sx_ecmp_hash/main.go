// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// sx_ecmp_hash applies a JSON ECMP hash configuration (router-wide and per port) to a Mellanox
// Spectrum switch through the SX SDK.
package main

import (
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/kvadrage/sx-ecmp-hash/app"
	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
	"github.com/kvadrage/sx-ecmp-hash/sxapi"
	"github.com/kvadrage/sx-ecmp-hash/version"
)

const program = "sx_ecmp_hash"

var (
	configFile   = kingpin.Flag("config-file", "JSON ECMP hash configuration file.").Short('c').Default(config.DefaultHashConfFile).String()
	settingsFile = kingpin.Flag("settings", "Settings file.").Default(config.DefaultSettingsFile).String()
	dryRun       = kingpin.Flag("dry-run", "Print the configuration that would be applied without touching the SDK.").Bool()
	dryRunPorts  = kingpin.Flag("dry-run-ports", "Number of front panel ports simulated in dry run mode.").Default("32").Int()
	watch        = kingpin.Flag("watch", "Keep running and re-apply the configuration whenever the file changes.").Bool()
)

func openSDK(deviceID, swid uint8) (ecmp.Session, error) {
	s, err := sxapi.Open(deviceID, swid)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func run() int {
	kingpin.Version(version.Print(program))
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	log.Infof("%s starting %s", program, version.Info())
	log.Debugf("Build context %s", version.BuildContext())

	a, err := app.New(app.Options{
		SettingsFile: *settingsFile,
		Tag:          program,
		DryRun:       *dryRun,
		DryRunPorts:  *dryRunPorts,
		Watch:        *watch,
	}, openSDK)
	if err != nil {
		log.WithError(err).Error("Initialisation failed")
		return ecmp.ExitCode(err)
	}

	defer a.Close()

	if !*watch {
		return ecmp.ExitCode(a.ApplyHashConfFile(*configFile))
	}

	stop := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

		sig := <-sigChan
		log.WithField("signal", sig).Info("Shutting down")
		close(stop)
	}()

	if err := a.WatchHashConfFile(*configFile, stop); err != nil {
		return -1
	}

	return 0
}

func main() {
	os.Exit(run())
}
