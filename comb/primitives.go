// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

// Boi matches the beginning of input. It consumes nothing and never emits a
// child.
var Boi Rule = RuleFunc(func(cur *Cursor) bool { return cur.IsBOI() })

// Eoi matches the end of input. It consumes nothing and never emits a
// child.
var Eoi Rule = RuleFunc(func(cur *Cursor) bool { return cur.IsEOI() })

// Bol matches the beginning of a line (column 0). It consumes nothing.
var Bol Rule = RuleFunc(func(cur *Cursor) bool { return cur.Column() == 0 })

// Eol matches "\n" or "\r\n", consuming 1 or 2 bytes respectively. A lone
// trailing '\r' not followed by '\n' is a failure, not a one-byte match.
var Eol Rule = RuleFunc(func(cur *Cursor) bool {
	pos := cur.Pos()
	switch cur.Peek() {
	case '\n':
		cur.Advance(1)
		return true
	case '\r':
		cur.Advance(1)
		if cur.Peek() == '\n' {
			cur.Advance(1)
			return true
		}
		cur.Jump(pos)
		return false
	default:
		return false
	}
})

// One matches and consumes any single byte equal to one of cs.
func One(cs ...byte) Rule {
	set := make(map[byte]bool, len(cs))
	for _, c := range cs {
		set[c] = true
	}
	return RuleFunc(func(cur *Cursor) bool {
		if cur.IsEOI() || !set[cur.Peek()] {
			return false
		}
		cur.Advance(1)
		return true
	})
}

// Str matches and consumes the exact byte sequence s. Str is defined to
// behave identically to One when len(s) == 1.
func Str(s string) Rule {
	if len(s) == 1 {
		return One(s[0])
	}
	b := []byte(s)
	return RuleFunc(func(cur *Cursor) bool {
		if cur.Size() < len(b) {
			return false
		}
		for i, c := range b {
			if cur.PeekAt(i) != c {
				return false
			}
		}
		cur.Advance(len(b))
		return true
	})
}

// Range matches and consumes a single byte falling in any of the closed
// intervals described by pairs of bytes in bounds (bounds[0],bounds[1] is
// [lo,hi], and so on), plus an optional trailing singleton if len(bounds) is
// odd. Each pair must satisfy lo <= hi; this is a caller invariant, not
// checked at runtime (spec §7).
func Range(bounds ...byte) Rule {
	pairs := len(bounds) / 2
	hasSingleton := len(bounds)%2 == 1
	var singleton byte
	if hasSingleton {
		singleton = bounds[len(bounds)-1]
	}
	return RuleFunc(func(cur *Cursor) bool {
		if cur.IsEOI() {
			return false
		}
		c := cur.Peek()
		for i := 0; i < pairs; i++ {
			lo, hi := bounds[2*i], bounds[2*i+1]
			if lo <= c && c <= hi {
				cur.Advance(1)
				return true
			}
		}
		if hasSingleton && c == singleton {
			cur.Advance(1)
			return true
		}
		return false
	})
}

// IdentFirst matches a byte legal as the first character of an identifier:
// [a-zA-Z_].
var IdentFirst = Range('a', 'z', 'A', 'Z', '_')

// IdentOther matches a byte legal as a non-first character of an
// identifier: [a-zA-Z0-9_].
var IdentOther = Range('a', 'z', 'A', 'Z', '0', '9', '_')

// Ident matches ident_first followed by zero or more ident_other.
var Ident = Seq(IdentFirst, Star(IdentOther))

// Keyword matches the literal s only when it is not immediately followed by
// an identifier character, so "if" does not also match the prefix of
// "ifdef".
func Keyword(s string) Rule {
	return Seq(Str(s), NotAt(IdentOther))
}
