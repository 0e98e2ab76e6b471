// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus adapts tracing.Event to a sirupsen/logrus logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/haydenheroux/combpeg/tracing"
)

// Exporter writes one logrus entry per tracing.Event, at Debug level for
// rule attempts and misses, Info for commits.
type Exporter struct {
	log *logrus.Logger
}

var _ tracing.Exporter = (*Exporter)(nil)

// New wraps log as a tracing.Exporter. A nil log uses logrus.StandardLogger.
func New(log *logrus.Logger) *Exporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Exporter{log: log}
}

func (e *Exporter) Export(ev tracing.Event) {
	fields := logrus.Fields{
		"rule":   ev.Rule,
		"tag":    ev.Tag,
		"depth":  ev.Depth,
		"offset": ev.Offset,
		"line":   ev.Line,
		"column": ev.Column,
	}
	entry := e.log.WithFields(fields)
	switch ev.Phase {
	case tracing.Enter:
		entry.Debug("comb: enter")
	case tracing.Failed:
		entry.Debug("comb: fail")
	case tracing.Matched:
		entry.Info("comb: match")
	}
}
