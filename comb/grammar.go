// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

import (
	"fmt"

	"github.com/haydenheroux/combpeg/tracing"
)

// Grammar is a compilation unit: a registry of named rules sharing one tag
// space and at most one designated separator. Assembling a Grammar
// (Declare/Define/SetSeparator) is expected to happen once, at program
// initialization, and is not safe for concurrent use; once assembled, Parse
// may be called concurrently since it touches no Grammar state.
type Grammar struct {
	names       map[string]*RuleRef
	rules       []*RuleRef
	nextTag     RuleTag
	nextMemoTag RuleTag
	separator   *RuleRef

	// Trace, if non-nil, receives structured events for every named-rule
	// attempt made during Parse that is not served from the memo table; a
	// memo hit emits no events. It costs nothing when left nil.
	Trace tracing.Exporter
}

// NewGrammar returns an empty Grammar ready for rule declarations.
func NewGrammar() *Grammar {
	return &Grammar{names: make(map[string]*RuleRef), nextTag: 1, nextMemoTag: 1}
}

func (g *Grammar) declare(name string, silent bool) *RuleRef {
	if _, exists := g.names[name]; exists {
		panic(fmt.Sprintf("comb: rule %q already declared", name))
	}
	r := &RuleRef{name: name, silent: silent}
	if !silent {
		r.tag = g.nextTag
		g.nextTag++
	}
	// Every declared rule, silent or not, gets its own memoTag: the memo
	// table is keyed on (memoTag, offset), and two distinct silent rules
	// (both stuck at the public NoRule tag) must not collide there just
	// because neither wraps a Node of its own.
	r.memoTag = g.nextMemoTag
	g.nextMemoTag++
	g.names[name] = r
	g.rules = append(g.rules, r)
	return r
}

// Declare forward-declares a regular (non-silent) named rule. The returned
// *RuleRef is usable inside other rule bodies immediately; Define must be
// called on it before any Parse that reaches it.
func (g *Grammar) Declare(name string) *RuleRef {
	return g.declare(name, false)
}

// DeclareSilent forward-declares a silent named rule: on match its children
// are spliced into its parent's children list instead of being wrapped in a
// new Node.
func (g *Grammar) DeclareSilent(name string) *RuleRef {
	return g.declare(name, true)
}

// Define binds body to a previously declared rule. It panics if r has
// already been defined, or if body is nil.
func (g *Grammar) Define(r *RuleRef, body Rule) {
	if r.body != nil {
		panic(fmt.Sprintf("comb: rule %q redefined", r.name))
	}
	if body == nil {
		panic(fmt.Sprintf("comb: rule %q defined with a nil body", r.name))
	}
	r.body = body
}

// Rule declares and defines a regular named rule in one call.
func (g *Grammar) Rule(name string, body Rule) *RuleRef {
	r := g.Declare(name)
	g.Define(r, body)
	return r
}

// SilentRule declares and defines a silent named rule in one call.
func (g *Grammar) SilentRule(name string, body Rule) *RuleRef {
	r := g.DeclareSilent(name)
	g.Define(r, body)
	return r
}

// SetSeparator designates r, which must already be declared on g, as the
// rule implicitly inserted at every Sep position in Chain (and so at every
// operand boundary of SeqSep). Only one separator is active at a time;
// calling SetSeparator again replaces it.
func (g *Grammar) SetSeparator(r *RuleRef) {
	g.separator = r
}

// Validate reports whether every rule declared on g has been defined. Parse
// does not call it; without it, an undefined rule surfaces only as a panic
// when a parse reaches that rule. Running it once after assembly surfaces
// grammar construction mistakes earlier, mirroring how a teacher-shaped parser
// exposes a Prepare step distinct from its first real use.
func (g *Grammar) Validate() error {
	for _, r := range g.rules {
		if r.body == nil {
			return fmt.Errorf("comb: rule %q declared but never defined", r.name)
		}
	}
	return nil
}

// Parse runs top against in and returns the resulting tree. It returns
// (Node{}, false) if top fails to match anywhere at the start of in; the
// driver never auto-anchors to end of input, so callers that require
// "match consumes all input" compose Seq(Boi, top, Eoi) themselves.
//
// Parse panics if top is a silent rule: a silent rule never wraps a Node of
// its own, so it cannot satisfy Parse's "return exactly one root Node"
// contract.
func (g *Grammar) Parse(top *RuleRef, in Input) (Node, bool) {
	if top.silent {
		panic(fmt.Sprintf("comb: cannot Parse with silent rule %q as the root", top.name))
	}
	cur := newCursor(in)
	memo := newMemoTable()
	if g.Trace != nil {
		memo.trace = &tracer{exp: g.Trace}
	}
	var out []Node
	if !top.match(cur, &out, memo) {
		return Node{}, false
	}
	return out[0], true
}
