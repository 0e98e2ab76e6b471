// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

import "fmt"

type seqRule []Rule

// Seq returns a rule that matches iff every rule in rs matches in order at
// the same starting position, with each subsequent rule continuing from
// where the previous one left off. Children emitted by every sub-rule are
// concatenated, in order, into the caller's scratchpad. On the first
// failure the whole Seq rolls back: the cursor returns to its entry
// position and no partial children are emitted.
//
// Nested Seq values are flattened into one n-ary seqRule at construction
// time, so Seq(a, Seq(b, c)) and Seq(Seq(a, b), c) build the identical
// value; CST shape is therefore insensitive to how a caller grouped a
// sequence.
func Seq(rs ...Rule) Rule {
	flat := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		if s, ok := r.(seqRule); ok {
			flat = append(flat, s...)
		} else {
			flat = append(flat, r)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return seqRule(flat)
	}
}

func (s seqRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	start := cur.Pos()
	n := len(*out)
	for _, r := range s {
		if !r.match(cur, out, memo) {
			cur.Jump(start)
			*out = (*out)[:n]
			return false
		}
	}
	return true
}

type choiceRule []Rule

// Choice returns a rule that tries each alternative in rs, in order, at the
// same starting position, and commits to the first one that matches — a
// later alternative is neither attempted nor consulted once an earlier one
// succeeds (ordered-choice PEG semantics; no backtracking across a commit).
// Each alternative is itself atomic, so a later alternative always sees the
// cursor at the original start position, never one an earlier failed
// alternative partially advanced.
//
// Nested Choice values are flattened at construction time, the same way Seq
// flattens nested sequences.
func Choice(rs ...Rule) Rule {
	flat := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		if c, ok := r.(choiceRule); ok {
			flat = append(flat, c...)
		} else {
			flat = append(flat, r)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return choiceRule(flat)
	}
}

func (c choiceRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	start := cur.Pos()
	n := len(*out)
	for _, r := range c {
		if r.match(cur, out, memo) {
			return true
		}
		cur.Jump(start)
		*out = (*out)[:n]
	}
	return false
}

type starRule struct{ child Rule }

// Star returns a rule that repeats r until it fails, always succeeding
// (possibly with zero repetitions). Children from every successful
// repetition are concatenated in order; the final, failing attempt rolls
// back by r's own atomicity and contributes nothing.
func Star(r Rule) Rule {
	return starRule{child: r}
}

func (s starRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	for {
		pos := cur.Pos()
		if !s.child.match(cur, out, memo) {
			return true
		}
		if cur.Pos().Offset == pos.Offset {
			panic(fmt.Sprintf("comb: Star child matched without consuming input at offset %d", pos.Offset))
		}
	}
}

type plusRule struct{ child Rule }

// Plus returns a rule that fails iff the first attempt at r fails;
// otherwise it behaves exactly like Star(r), including the same
// zero-width-repetition guard.
func Plus(r Rule) Rule {
	return plusRule{child: r}
}

func (p plusRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	if !p.child.match(cur, out, memo) {
		return false
	}
	return Star(p.child).match(cur, out, memo)
}

type optRule struct{ child Rule }

// Opt returns a rule that always succeeds: it matches r if it can, keeping
// any children r emits, and otherwise matches nothing, emitting nothing and
// leaving the cursor untouched.
func Opt(r Rule) Rule {
	return optRule{child: r}
}

func (o optRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	start := cur.Pos()
	n := len(*out)
	if o.child.match(cur, out, memo) {
		return true
	}
	cur.Jump(start)
	*out = (*out)[:n]
	return true
}

type atRule struct{ child Rule }

// At returns the PEG and-predicate `&r`: it runs r, unconditionally
// restores the cursor to its entry position, and returns r's result. It
// never emits children, even on success.
func At(r Rule) Rule {
	return atRule{child: r}
}

func (a atRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	start := cur.Pos()
	var discard []Node
	ok := a.child.match(cur, &discard, memo)
	cur.Jump(start)
	return ok
}

type notAtRule struct{ child Rule }

// NotAt returns the PEG not-predicate `!r`: it runs r, unconditionally
// restores the cursor, and returns the negation of r's result. It never
// emits children.
func NotAt(r Rule) Rule {
	return notAtRule{child: r}
}

func (n notAtRule) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	start := cur.Pos()
	var discard []Node
	ok := n.child.match(cur, &discard, memo)
	cur.Jump(start)
	return !ok
}
