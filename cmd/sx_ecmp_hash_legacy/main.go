// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// sx_ecmp_hash_legacy sets the router-wide ECMP hash fields of a Mellanox Spectrum switch from
// a flat list of field names, one per line. If the list cannot be read, the following default
// is applied:
//
//	SX_ROUTER_ECMP_HASH_SRC_IP
//	SX_ROUTER_ECMP_HASH_DST_IP
//	SX_ROUTER_ECMP_HASH_TCP_UDP
//	SX_ROUTER_ECMP_HASH_TCP_UDP_SRC_PORT
//	SX_ROUTER_ECMP_HASH_TCP_UDP_DST_PORT
//	SX_ROUTER_ECMP_HASH_SMAC
//	SX_ROUTER_ECMP_HASH_DMAC
//	SX_ROUTER_ECMP_HASH_ETH_TYPE
//	SX_ROUTER_ECMP_HASH_VID
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/kvadrage/sx-ecmp-hash/app"
	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
	"github.com/kvadrage/sx-ecmp-hash/sxapi"
	"github.com/kvadrage/sx-ecmp-hash/version"
)

const program = "sx_ecmp_hash_legacy"

var (
	configFile   = kingpin.Flag("config-file", "File listing the enabled ECMP hash fields.").Short('c').Default(config.DefaultFieldListFile).String()
	settingsFile = kingpin.Flag("settings", "Settings file.").Default(config.DefaultSettingsFile).String()
	dryRun       = kingpin.Flag("dry-run", "Print the configuration that would be applied without touching the SDK.").Bool()
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

	a, err := app.New(app.Options{
		SettingsFile: *settingsFile,
		Tag:          program,
		DryRun:       *dryRun,
	}, openSDK)
	if err != nil {
		log.WithError(err).Error("Initialisation failed")
		return ecmp.ExitCode(err)
	}

	defer a.Close()

	return ecmp.ExitCode(a.ApplyFieldList(*configFile))
}

func main() {
	os.Exit(run())
}
