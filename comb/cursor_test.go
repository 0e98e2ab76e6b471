// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

import "testing"

func TestCursorLineColumnTracking(t *testing.T) {
	c := newCursor(NewStringInput("ab\ncd\r\nef"))
	c.Advance(2) // "ab"
	if got := c.Pos(); got != (Position{Offset: 2, Line: 1, Column: 2}) {
		t.Fatalf("after 2 bytes: %+v", got)
	}
	c.Advance(1) // "\n"
	if got := c.Pos(); got != (Position{Offset: 3, Line: 2, Column: 0}) {
		t.Fatalf("after newline: %+v", got)
	}
	c.Advance(4) // "cd\r\n"
	if got := c.Pos(); got != (Position{Offset: 7, Line: 3, Column: 0}) {
		t.Fatalf("after cd\\r\\n: %+v", got)
	}
}

func TestCursorJumpRestores(t *testing.T) {
	c := newCursor(NewStringInput("hello"))
	start := c.Pos()
	c.Advance(3)
	c.Jump(start)
	if c.Pos() != start {
		t.Fatalf("Jump did not restore position: %+v != %+v", c.Pos(), start)
	}
}

func TestCursorBoiEoi(t *testing.T) {
	c := newCursor(NewStringInput("x"))
	if !c.IsBOI() {
		t.Error("expected IsBOI at start")
	}
	if c.IsEOI() {
		t.Error("did not expect IsEOI at start")
	}
	c.Advance(1)
	if c.IsBOI() {
		t.Error("did not expect IsBOI after advancing")
	}
	if !c.IsEOI() {
		t.Error("expected IsEOI at end")
	}
}

func TestCursorPeekPastEnd(t *testing.T) {
	c := newCursor(NewStringInput(""))
	if got := c.Peek(); got != 0 {
		t.Errorf("Peek on empty input = %v, want 0", got)
	}
	if got := c.PeekAt(5); got != 0 {
		t.Errorf("PeekAt past end = %v, want 0", got)
	}
}

func TestEolRejectsLoneCR(t *testing.T) {
	c := newCursor(NewStringInput("\rx"))
	if Eol.match(c, &[]Node{}, newMemoTable()) {
		t.Fatal("expected Eol to reject a lone \\r not followed by \\n")
	}
	if c.Offset() != 0 {
		t.Errorf("Eol must not consume on failure, offset = %d", c.Offset())
	}
}

func TestEolAcceptsBothForms(t *testing.T) {
	for _, in := range []string{"\n", "\r\n"} {
		c := newCursor(NewStringInput(in))
		if !Eol.match(c, &[]Node{}, newMemoTable()) {
			t.Fatalf("expected Eol to accept %q", in)
		}
		if c.Offset() != len(in) {
			t.Errorf("Eol on %q consumed %d bytes, want %d", in, c.Offset(), len(in))
		}
	}
}
