// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"testing"

	"github.com/haydenheroux/combpeg/comb"
)

func TestList(t *testing.T) {
	g := comb.NewGrammar()
	r := g.Rule("r", comb.List(comb.One('a'), comb.One(',')))
	n, ok := g.Parse(r, comb.NewStringInput("a,a,a"))
	if !ok {
		t.Fatal("expected match")
	}
	if got := string(n.Text()); got != "a,a,a" {
		t.Errorf("matched %q, want %q", got, "a,a,a")
	}
	if _, ok := g.Parse(r, comb.NewStringInput("")); ok {
		t.Fatal("List(R,S) requires at least one R")
	}
}

func TestList3PadsSeparator(t *testing.T) {
	g := comb.NewGrammar()
	pad := g.SilentRule("pad", comb.Star(comb.One(' ')))
	r := g.Rule("r", comb.List3(comb.One('a'), comb.One(','), pad))
	n, ok := g.Parse(r, comb.NewStringInput("a , a,a"))
	if !ok {
		t.Fatal("expected match")
	}
	if got := string(n.Text()); got != "a , a,a" {
		t.Errorf("matched %q, want %q", got, "a , a,a")
	}
}

func TestJoin(t *testing.T) {
	g := comb.NewGrammar()
	r := g.Rule("r", comb.Join(comb.One(':'), comb.One('a'), comb.One('b'), comb.One('c')))
	n, ok := g.Parse(r, comb.NewStringInput("a:b:c"))
	if !ok {
		t.Fatal("expected match")
	}
	if got := string(n.Text()); got != "a:b:c" {
		t.Errorf("matched %q, want %q", got, "a:b:c")
	}
}

func TestJoinRequiresTrailingRule(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty trailing rule list")
		}
	}()
	comb.Join(comb.One(':'), comb.One('a'))
}
