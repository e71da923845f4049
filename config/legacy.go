// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Flat list of global hash field names, one per line.

package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

const DefaultFieldListFile = "/etc/sx_ecmp_hash.conf"

// ReadFieldList reads the flat field list at path and returns the OR of all known field names.
// An error is only returned if the file cannot be read; callers fall back to
// ecmp.DefaultGlobalHash in that case.
func ReadFieldList(path string) (ecmp.Bitmask, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	defer file.Close()

	return ParseFieldList(file)
}

// ParseFieldList parses a flat field list. Blank lines and lines starting with '#' or '$' are
// skipped. Unknown names are logged and ignored.
func ParseFieldList(r io.Reader) (ecmp.Bitmask, error) {
	var hash ecmp.Bitmask

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "$") {
			continue
		}

		bit, err := ecmp.ParseHashBit(line)
		if err != nil {
			log.WithFields(log.Fields{"line": lineNo, "field": line}).Warn("Ignoring unknown ECMP hash field")
			continue
		}

		hash |= ecmp.Bitmask(bit)
	}

	return hash, scanner.Err()
}
