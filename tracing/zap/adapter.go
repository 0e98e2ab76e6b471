// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap adapts tracing.Event to a go.uber.org/zap logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/haydenheroux/combpeg/tracing"
)

// Exporter writes one zap log entry per tracing.Event, at Debug level for
// rule attempts and misses, Info for commits.
type Exporter struct {
	log *zap.Logger
}

var _ tracing.Exporter = (*Exporter)(nil)

// New wraps log as a tracing.Exporter. A nil log uses zap.NewNop.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log}
}

func (e *Exporter) Export(ev tracing.Event) {
	fields := []zap.Field{
		zap.String("rule", ev.Rule),
		zap.Uint64("tag", ev.Tag),
		zap.Int("depth", ev.Depth),
		zap.Int("offset", ev.Offset),
		zap.Int("line", ev.Line),
		zap.Int("column", ev.Column),
	}
	switch ev.Phase {
	case tracing.Enter:
		e.log.Debug("comb: enter", fields...)
	case tracing.Failed:
		e.log.Debug("comb: fail", fields...)
	case tracing.Matched:
		e.log.Info("comb: match", fields...)
	}
}
