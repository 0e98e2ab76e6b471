// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

// List matches r followed by zero or more repetitions of (s, r), i.e. r
// interspersed with the separator s: a comma-separated list with no
// trailing or leading separator is the canonical use. Equivalent to
// Seq(r, Star(Seq(s, r))).
func List(r, s Rule) Rule {
	return Seq(r, Star(Seq(s, r)))
}

// List3 is List with an additional rule p bracketing each repeated
// separator, matching r followed by zero or more repetitions of
// (p, s, p, r). A separator surrounded by optional padding (e.g. blank
// space around a comma) is the canonical use. Equivalent to
// Seq(r, Star(Seq(p, s, p, r))).
func List3(r, s, p Rule) Rule {
	return Seq(r, Star(Seq(p, s, p, r)))
}

// Join matches r followed by s and rs[0], then s and rs[1], and so on:
// r interspersed with a fixed, heterogeneous tail rather than a repeated
// pattern. Join panics if rs is empty.
func Join(s Rule, r Rule, rs ...Rule) Rule {
	if len(rs) == 0 {
		panic("comb: Join requires at least one trailing rule")
	}
	parts := make([]Rule, 0, 2+2*len(rs))
	parts = append(parts, r)
	for _, next := range rs {
		parts = append(parts, s, next)
	}
	return Seq(parts...)
}
