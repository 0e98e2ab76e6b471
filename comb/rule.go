// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

import "fmt"

// Rule is a matcher: a primitive, a combinator, or a named rule reference.
// match attempts to consume from cur starting at its current position. On
// success it advances cur to the end of the match and appends any produced
// children to *out, in input order. On failure it MUST leave cur and *out
// exactly as they were on entry — every Rule in this package upholds that
// contract, which is what lets combinators compose without bespoke rollback
// logic at each call site.
type Rule interface {
	match(cur *Cursor, out *[]Node, memo *memoTable) bool
}

// RuleFunc adapts a plain matching function to the Rule interface, for
// primitives that need no child bookkeeping of their own.
type RuleFunc func(cur *Cursor) bool

func (f RuleFunc) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	return f(cur)
}

// RuleRef is a named rule's stable identity: a tag, a silence flag, and a
// deferred body. It is the indirection point that lets mutually recursive
// grammars compose — a *RuleRef is usable as a Rule the instant it is
// declared, before its body is ever assigned, because match only
// dereferences body at call time.
type RuleRef struct {
	name string
	// tag is the public Node tag: assigned only to non-silent rules, and
	// NoRule for every silent one, since a silent rule never wraps a Node.
	tag RuleTag
	// memoTag is the memo table's cache key component: assigned to every
	// declared rule, silent or not, so that two distinct silent rules never
	// share a (tag, offset) memo entry merely because both carry the
	// public NoRule tag. It is never exposed; callers only ever see tag via
	// Tag().
	memoTag RuleTag
	silent  bool
	body    Rule
}

// Name returns the rule's declared name.
func (r *RuleRef) Name() string { return r.name }

// Tag returns the rule's stable tag, or NoRule if it is silent.
func (r *RuleRef) Tag() RuleTag { return r.tag }

// Silent reports whether this rule was declared silent.
func (r *RuleRef) Silent() bool { return r.silent }

func (r *RuleRef) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	if r.body == nil {
		panic(fmt.Sprintf("comb: rule %q used before it was defined", r.name))
	}
	offset := cur.Offset()
	if entry, hit := memo.lookup(r.memoTag, offset); hit {
		if !entry.ok {
			return false
		}
		cur.Jump(entry.end)
		*out = append(*out, entry.emit...)
		return true
	}

	start := cur.Pos()
	memo.trace.enter(r, start)
	var local []Node
	if !r.body.match(cur, &local, memo) {
		cur.Jump(start)
		memo.trace.exit(r, start, false)
		memo.store(r.memoTag, offset, memoEntry{ok: false})
		return false
	}

	var emit []Node
	if r.silent {
		emit = local
	} else {
		if len(local) == 0 {
			// A rolled-back alternative can leave an empty non-nil slice.
			local = nil
		}
		emit = []Node{{
			tag:      r.tag,
			begin:    start.Offset,
			end:      cur.Offset(),
			line:     start.Line,
			column:   start.Column,
			text:     cur.slice(start.Offset, cur.Offset()),
			children: local,
		}}
	}
	memo.trace.exit(r, start, true)
	memo.store(r.memoTag, offset, memoEntry{ok: true, end: cur.Pos(), emit: emit})
	*out = append(*out, emit...)
	return true
}
