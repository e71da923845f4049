// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/kvadrage/sx-ecmp-hash/config"
	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

// ApplyFieldList applies the flat field list at path as the global hash. If the file cannot be
// read, ecmp.DefaultGlobalHash is applied instead.
func (a *App) ApplyFieldList(path string) error {
	log.Infof("[+] Reading ECMP hash configuration from %s", path)

	hash, err := config.ReadFieldList(path)
	if err != nil {
		log.WithError(err).Warn("[-] Can't read ECMP hash configuration. Using default")
		hash = ecmp.DefaultGlobalHash
	} else if hash == 0 {
		log.Warn("ECMP hash configuration names no known fields, hashing will be disabled")
	}

	report, err := ecmp.ApplyGlobal(a.Session, a.Out, func(p *ecmp.GlobalParams) {
		p.Hash = hash
	})
	a.Report([]ecmp.Report{report})

	return err
}

// ApplyHashConfFile reads the JSON hash document at path and applies it.
func (a *App) ApplyHashConfFile(path string) error {
	log.Infof("[+] Reading ECMP hash configuration from %s", path)

	conf, err := config.ReadHashConf(path)
	if err != nil {
		log.WithError(err).Error("[-] Can't read ECMP hash configuration")
		return err
	}

	reports, err := a.ApplyHashConf(conf)
	a.Report(reports)

	return err
}

// ApplyHashConf applies router_global_hash, then router_port_hash. A failure of the global
// configuration stops the run; per-port failures do not stop the remaining ports.
func (a *App) ApplyHashConf(conf *config.HashConf) ([]ecmp.Report, error) {
	var reports []ecmp.Report

	if conf.RouterGlobalHash != nil {
		report, err := ecmp.ApplyGlobal(a.Session, a.Out, conf.RouterGlobalHash.Update)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}

	if len(conf.RouterPortHash) == 0 {
		return reports, nil
	}

	log.Info("[+] Getting port list")
	ports, err := a.Session.Ports()
	if err != nil {
		log.WithError(err).Error("[-] Error getting port list")
		return reports, err
	}

	pm := ecmp.NewPortMap(ports, a.Aliases)
	assignments := conf.Assignments(pm)

	log.Infof("[+] Setting ECMP port hash params on %d ports", len(assignments))
	portReports, err := ecmp.ApplyPorts(a.Session, a.Out, assignments)

	return append(reports, portReports...), err
}
