// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ecmp

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// ScopeGlobal is the Report scope of the router-wide hash configuration.
const ScopeGlobal = "global"

// Report records the outcome of applying one hash configuration, for consumption by writers.
type Report struct {
	Time    time.Time
	Scope   string // ScopeGlobal or the configured port name
	LogPort LogPort
	Global  *GlobalParams
	Port    *PortParams
	Status  int // ExitCode of the SDK call
}

// PortAssignment binds a configured port name to its resolved logical port. Err is set when
// the name could not be resolved; such assignments are reported and skipped.
type PortAssignment struct {
	Name   string
	Port   LogPort
	Params PortParams
	Err    error
}

// ApplyGlobal reads the current global hash parameters, lets update modify them and writes the
// result back. Both the old and new parameters are dumped to w. Once the write succeeded, a
// failure to read the new parameters back is only logged.
func ApplyGlobal(s Session, w io.Writer, update func(*GlobalParams)) (Report, error) {
	report := Report{Time: time.Now(), Scope: ScopeGlobal}

	log.Info("[+] Getting ECMP hash params")
	params, err := s.GlobalHashParams()
	if err != nil {
		log.WithError(err).Error("[-] Error getting ECMP hash params")
		report.Status = ExitCode(err)
		return report, err
	}
	DumpGlobal(w, params)

	update(&params)
	report.Global = &params

	log.WithFields(log.Fields{
		"ecmp_hash": uint32(params.Hash),
		"hash_type": params.Type,
		"seed":      params.Seed,
		"symmetric": params.Symmetric,
	}).Infof("[+] Setting new ECMP hash values: %d", uint32(params.Hash))

	if err := s.SetGlobalHashParams(params); err != nil {
		log.WithError(err).Error("[-] Error setting ECMP hash params")
		report.Status = ExitCode(err)
		return report, err
	}

	log.Info("[+] Getting updated ECMP hash params")
	updated, err := s.GlobalHashParams()
	if err != nil {
		log.WithError(err).Warn("[-] Error getting updated ECMP hash params")
		return report, nil
	}
	DumpGlobal(w, updated)

	return report, nil
}

// ApplyPorts pushes each assignment to the SDK. A failing port does not stop the loop; the
// error of the last failing port is returned.
func ApplyPorts(s Session, w io.Writer, assignments []PortAssignment) ([]Report, error) {
	var (
		lastErr error
		reports = make([]Report, 0, len(assignments))
	)

	for _, a := range assignments {
		a := a
		report := Report{Time: time.Now(), Scope: a.Name, LogPort: a.Port, Port: &a.Params}
		logger := log.WithFields(log.Fields{"port": a.Name, "log_port": a.Port})

		if a.Err != nil {
			logger.WithError(a.Err).Error("[-] Cannot resolve port")
			lastErr = a.Err
			report.Status = ExitCode(a.Err)
			reports = append(reports, report)
			continue
		}

		DumpPort(w, a.Name, a.Port, a.Params)

		if err := s.SetPortHashParams(a.Port, a.Params); err != nil {
			logger.WithError(err).Error("[-] Error setting port ECMP hash params")
			lastErr = err
			report.Status = ExitCode(err)
		} else {
			logger.WithFields(log.Fields{
				"enables": len(a.Params.Enables),
				"fields":  len(a.Params.Fields),
			}).Info("[+] Port ECMP hash params set")
		}

		reports = append(reports, report)
	}

	return reports, lastErr
}
