// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

// memoKey identifies one named-rule attempt: the rule and the offset it was
// tried at. Memoization lives only at named-rule boundaries (spec §3), never
// inside primitives or bare combinators.
//
// memoTag is RuleRef.memoTag, not RuleRef.tag: every declared rule gets a
// distinct memoTag regardless of silence, so two different silent rules
// (which both carry the public NoRule tag) never collide on the same cache
// entry merely because they happened to be probed at the same offset.
type memoKey struct {
	memoTag RuleTag
	offset  int
}

// memoEntry records the outcome of a previous attempt at a memoKey: whether
// it matched, where the cursor ended up if so, and exactly what was appended
// to the caller's scratchpad (either a single wrapper Node for a regular
// rule, or the rule's raw children for a silent one). Replaying emit on a
// cache hit reproduces the original call's effect without re-deriving it.
type memoEntry struct {
	ok   bool
	end  Position
	emit []Node
}

// memoTable is the packrat cache for a single Grammar.Parse invocation. It is
// never shared across parses or across goroutines; bounded by
// input_length x number_of_named_rules, with no eviction policy, matching a
// single-shot parse's resource model (spec §5).
type memoTable struct {
	entries map[memoKey]memoEntry
	trace   *tracer
}

func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[memoKey]memoEntry)}
}

func (m *memoTable) lookup(memoTag RuleTag, offset int) (memoEntry, bool) {
	e, ok := m.entries[memoKey{memoTag: memoTag, offset: offset}]
	return e, ok
}

func (m *memoTable) store(memoTag RuleTag, offset int, e memoEntry) {
	m.entries[memoKey{memoTag: memoTag, offset: offset}] = e
}
