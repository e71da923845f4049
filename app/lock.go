// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package app

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Lock is an exclusive advisory lock held for the duration of an SDK session, so that two
// configuration runs never interleave their SDK calls.
type Lock struct {
	file *os.File
}

// AcquireLock takes an exclusive flock(2) on path, blocking until it is available.
func AcquireLock(path string) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open lock file")
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		file.Close()
		return nil, errors.Wrapf(err, "cannot lock %s", path)
	}

	return &Lock{file: file}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	defer l.file.Close()
	return unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
}
