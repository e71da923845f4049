// Copyright 2019 The sx-ecmp-hash Authors. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvadrage/sx-ecmp-hash/ecmp"
)

type recordingWriter struct {
	runs [][]ecmp.Report
}

func (w *recordingWriter) Receiver(input chan []ecmp.Report) {
	for reports := range input {
		w.runs = append(w.runs, reports)
	}
}

func TestDispatcher(t *testing.T) {
	a, b := &recordingWriter{}, &recordingWriter{}
	d := NewDispatcher([]ReportWriter{a, b})

	d.Send([]ecmp.Report{{Scope: ecmp.ScopeGlobal}})
	d.Send([]ecmp.Report{{Scope: "swp1"}, {Scope: "swp2"}})
	d.Close()

	for _, w := range []*recordingWriter{a, b} {
		if assert.Len(t, w.runs, 2) {
			assert.Equal(t, ecmp.ScopeGlobal, w.runs[0][0].Scope)
			assert.Len(t, w.runs[1], 2)
		}
	}
}

func TestDispatcherNoWriters(t *testing.T) {
	d := NewDispatcher(nil)
	d.Send([]ecmp.Report{{Scope: ecmp.ScopeGlobal}})
	d.Close()
}
