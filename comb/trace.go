// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

import "github.com/haydenheroux/combpeg/tracing"

// tracer drives a tracing.Exporter from named-rule invocations, tracking
// call depth the way the teacher's Parser.debugTrace tracked State.depth.
// It is only ever allocated when a Grammar has Trace set, so an untraced
// parse pays nothing for it.
type tracer struct {
	exp   tracing.Exporter
	depth int
}

func (t *tracer) enter(r *RuleRef, pos Position) {
	if t == nil {
		return
	}
	t.exp.Export(tracing.Event{
		Rule: r.name, Tag: uint64(r.tag), Depth: t.depth,
		Offset: pos.Offset, Line: pos.Line, Column: pos.Column,
		Phase: tracing.Enter,
	})
	t.depth++
}

func (t *tracer) exit(r *RuleRef, pos Position, ok bool) {
	if t == nil {
		return
	}
	t.depth--
	phase := tracing.Failed
	if ok {
		phase = tracing.Matched
	}
	t.exp.Export(tracing.Event{
		Rule: r.name, Tag: uint64(r.tag), Depth: t.depth,
		Offset: pos.Offset, Line: pos.Line, Column: pos.Column,
		Phase: phase,
	})
}
