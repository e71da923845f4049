// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package config

import (
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher calls a function whenever a watched file changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching path and calls onChange from a separate goroutine on every change other
// than a bare chmod. Removed files (e.g. replaced by an editor) are re-added to the watch.
func Watch(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: path, watcher: fsw, done: make(chan struct{})}
	go w.run(onChange)

	return w, nil
}

func (w *Watcher) run(onChange func()) {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Ignore chmod, everything else requires a reload
			if event.Op == fsnotify.Chmod {
				break
			}

			log.WithFields(log.Fields{"file": w.path, "op": event.Op}).Info("Watcher event")

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := w.watcher.Add(w.path); err != nil {
					log.WithError(err).Error("Cannot re-add fsnotify watch")
					break
				}
			}

			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				log.WithError(err).Error("Error watching file")
			}
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
