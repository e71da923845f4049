// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/kvadrage/sx-ecmp-hash/config"
)

// WatchHashConfFile applies the JSON hash document at path, then re-applies it on every change
// until stop is closed. A failing run, the first one included, is logged and watching goes on,
// so a broken file can be fixed in place. Only a failure to set up the watch is returned.
func (a *App) WatchHashConfFile(path string, stop <-chan struct{}) error {
	if err := a.ApplyHashConfFile(path); err != nil {
		log.WithError(err).Error("Initial ECMP hash configuration failed, waiting for changes")
	}

	w, err := config.Watch(path, func() {
		if err := a.ApplyHashConfFile(path); err != nil {
			log.WithError(err).Error("Re-applying ECMP hash configuration failed")
		}
	})
	if err != nil {
		log.WithError(err).Error("Cannot watch ECMP hash configuration")
		return err
	}

	defer w.Close()

	<-stop
	return nil
}
