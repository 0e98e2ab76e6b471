// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

// sepMark is the sentinel produced by Sep. Go has no user-definable infix
// operators, so a grammar that mixes tight (&) and separator-injecting (&&)
// concatenation spells the latter as this marker value placed between two
// operands of Chain, rather than as a true operator.
type sepMark struct{}

// Sep marks a separator-injection point inside a Chain call, standing in
// for the `&&` operator of the textual grammar notation this package has no
// infix syntax for.
var Sep Rule = sepMark{}

func (sepMark) match(cur *Cursor, out *[]Node, memo *memoTable) bool {
	panic("comb: Sep used outside of Grammar.Chain")
}

// Chain builds a sequence from parts, where each adjacent pair of operands
// not separated by a Sep marker concatenates tightly (as Seq would), and
// each pair straddling a Sep marker has g's separator rule matched between
// them. The separator is an ordinary named rule in that position: a silent
// separator adds nothing to the tree, a regular one adds its own Node.
// Chain panics if g has no separator set, or if parts begins or ends with
// Sep.
//
// g.Chain(a, b, Sep, c, d) therefore matches a, b, sep, c, d in order,
// equivalent to Seq(a, b, sep, c, d) with sep bound to g's separator, but
// written the way a grammar author reads "a & b && c & d".
func (g *Grammar) Chain(parts ...Rule) Rule {
	if g.separator == nil {
		panic("comb: Chain used without a separator set via SetSeparator")
	}
	if len(parts) == 0 {
		return nil
	}
	if _, ok := parts[0].(sepMark); ok {
		panic("comb: Chain parts must not begin with Sep")
	}
	if _, ok := parts[len(parts)-1].(sepMark); ok {
		panic("comb: Chain parts must not end with Sep")
	}
	flat := make([]Rule, 0, len(parts)*2)
	for i, p := range parts {
		if _, ok := p.(sepMark); ok {
			continue
		}
		if i > 0 {
			if _, prevWasSep := parts[i-1].(sepMark); prevWasSep {
				flat = append(flat, g.separator)
			}
		}
		flat = append(flat, p)
	}
	return Seq(flat...)
}

// SeqSep is Chain with a Sep marker implied between every operand: it
// matches rs in order with g's separator matched between each pair.
// g.SeqSep(a, b, c) is equivalent to g.Chain(a, Sep, b, Sep, c), and to how the `&&` operator in the textual
// grammar notation chains a uniform run of operands.
func (g *Grammar) SeqSep(rs ...Rule) Rule {
	if len(rs) == 0 {
		return nil
	}
	if g.separator == nil {
		panic("comb: SeqSep used without a separator set via SetSeparator")
	}
	parts := make([]Rule, 0, len(rs)*2-1)
	for i, r := range rs {
		if i > 0 {
			parts = append(parts, Sep)
		}
		parts = append(parts, r)
	}
	return g.Chain(parts...)
}
