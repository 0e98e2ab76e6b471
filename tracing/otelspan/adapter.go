// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otelspan adapts tracing.Event to OpenTelemetry spans, one span per
// named-rule attempt.
package otelspan

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/haydenheroux/combpeg/tracing"
)

// Exporter opens a span on Enter and closes it on the matching Matched or
// Failed, keyed by nesting depth the way the teacher's otel tracer keyed
// in-flight spans by parent event ID. An Exporter is not safe to share
// across concurrent Grammar.Parse calls; give each goroutine its own.
type Exporter struct {
	ctx    context.Context
	tracer trace.Tracer

	mu    sync.Mutex
	stack map[int]openSpan
}

type openSpan struct {
	ctx  context.Context
	span trace.Span
}

var _ tracing.Exporter = (*Exporter)(nil)

// New returns an Exporter that starts spans on tr under ctx.
func New(ctx context.Context, tr trace.Tracer) *Exporter {
	return &Exporter{ctx: ctx, tracer: tr, stack: make(map[int]openSpan)}
}

func (e *Exporter) Export(ev tracing.Event) {
	switch ev.Phase {
	case tracing.Enter:
		parent := e.parentContext(ev.Depth)
		ctx, span := e.tracer.Start(parent, ev.Rule)
		span.SetAttributes(
			attribute.Int64("comb.tag", int64(ev.Tag)),
			attribute.Int("comb.offset", ev.Offset),
			attribute.Int("comb.line", ev.Line),
			attribute.Int("comb.column", ev.Column),
		)
		e.mu.Lock()
		e.stack[ev.Depth] = openSpan{ctx: ctx, span: span}
		e.mu.Unlock()
	case tracing.Matched, tracing.Failed:
		e.mu.Lock()
		open, ok := e.stack[ev.Depth]
		delete(e.stack, ev.Depth)
		e.mu.Unlock()
		if !ok {
			return
		}
		if ev.Phase == tracing.Failed {
			open.span.SetStatus(codes.Error, "no match")
		}
		open.span.End()
	}
}

func (e *Exporter) parentContext(depth int) context.Context {
	if depth == 0 {
		return e.ctx
	}
	e.mu.Lock()
	parent, ok := e.stack[depth-1]
	e.mu.Unlock()
	if !ok {
		return e.ctx
	}
	return parent.ctx
}
