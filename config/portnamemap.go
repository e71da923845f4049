// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Port name map, in the spirit of the OpenSM ib-node-name-map.

package config

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"unicode"

	log "github.com/sirupsen/logrus"
)

// The PortNameMap type maps user-defined port names (e.g. "Ethernet0" or "uplink1") to a port
// spec understood by ecmp.PortMap: a front panel label ("1", "3s1") or a logical port id
// ("0x10100"). Each line of the file holds the port spec followed by the name; names may be
// quoted and '#' starts a comment.
type PortNameMap struct {
	path    string
	names   map[string]string
	lock    sync.RWMutex
	watcher *Watcher
}

// NewPortNameMap opens and parses the port name map at path. If watch is set, the map is
// reloaded whenever the file changes.
func NewPortNameMap(path string, watch bool) (*PortNameMap, error) {
	n := &PortNameMap{path: path}

	if err := n.reload(); err != nil {
		return nil, err
	}

	if watch {
		w, err := Watch(path, func() {
			if err := n.reload(); err != nil {
				log.WithError(err).Error("Failed to reload port name map")
			} else {
				log.Info("Port name map reloaded")
			}
		})
		if err != nil {
			log.WithError(err).Error("Cannot add fsnotify watch for port name map")
		} else {
			n.watcher = w
		}
	}

	return n, nil
}

// Lookup returns the port spec mapped to name.
func (n *PortNameMap) Lookup(name string) (string, bool) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	spec, ok := n.names[name]
	return spec, ok
}

// Close stops watching the map file, if it was watched.
func (n *PortNameMap) Close() error {
	if n.watcher != nil {
		return n.watcher.Close()
	}
	return nil
}

func (n *PortNameMap) reload() error {
	names := make(map[string]string)

	file, err := os.Open(n.path)
	if err != nil {
		return err
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Tokenize line, honouring quoted strings
	lastQuote := rune(0)
	f := func(c rune) bool {
		switch {
		case c == lastQuote:
			lastQuote = rune(0)
			return false
		case lastQuote != rune(0):
			return false
		case unicode.In(c, unicode.Quotation_Mark):
			lastQuote = c
			return false
		default:
			return unicode.IsSpace(c)
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lastQuote = rune(0)
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, f)
		if len(fields) < 2 || strings.HasPrefix(fields[1], "#") {
			continue
		}

		names[strings.Trim(fields[1], "\"'")] = fields[0]
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	n.lock.Lock()
	n.names = names
	n.lock.Unlock()

	return nil
}
