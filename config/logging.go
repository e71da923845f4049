// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package config

import (
	"log/syslog"

	log "github.com/sirupsen/logrus"
	lSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// Apply sets the global logrus level and, if enabled, attaches a syslog hook.
func (l LoggingConf) Apply(tag string) error {
	log.SetLevel(log.Level(l.LogLevel))

	if l.EnableSyslog {
		hook, err := lSyslog.NewSyslogHook("", "", syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	return nil
}
