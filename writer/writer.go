// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package writer defines the ReportWriter interface type, which all report writers must
// implement in order to receive the outcome of hash configuration runs. What each writer does
// with that information is dependent on the individual writer.
package writer

import (
	"sync"

	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

// ReportWriter defines the interface type that all report writers must implement. Each value
// received on the channel holds the reports of one configuration run.
type ReportWriter interface {
	Receiver(chan []ecmp.Report)
}

// Dispatcher fans out run reports to a set of writers, each running in its own goroutine.
type Dispatcher struct {
	chans []chan []ecmp.Report
	wg    sync.WaitGroup
}

// NewDispatcher starts the receivers of all writers.
func NewDispatcher(writers []ReportWriter) *Dispatcher {
	d := &Dispatcher{}

	for _, w := range writers {
		c := make(chan []ecmp.Report, 1)
		d.chans = append(d.chans, c)
		d.wg.Add(1)

		go func(w ReportWriter) {
			defer d.wg.Done()
			w.Receiver(c)
		}(w)
	}

	return d
}

// Send hands the reports of one run to every writer.
func (d *Dispatcher) Send(reports []ecmp.Report) {
	for _, c := range d.chans {
		c <- reports
	}
}

// Close closes the writer channels and waits for all receivers to return.
func (d *Dispatcher) Close() {
	for _, c := range d.chans {
		close(c)
	}
	d.wg.Wait()
}
