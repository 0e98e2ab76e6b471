// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comb provides a compile-time composed Parsing Expression Grammar
// (PEG) parser-combinator engine.
//
// A Grammar declares named rules built out of primitive matchers (Boi, Eoi,
// One, Str, Range, ...) and algebraic combinators (Seq, Choice, Star, Plus,
// Opt, At, NotAt). Grammar.Parse then runs a chosen rule, recursive-descent
// style, against an Input and produces a concrete syntax tree (Node) of
// exactly the rules the caller chose to name.
//
// Rules are declared before they are necessarily defined, so mutually
// recursive grammars compose: Grammar.Declare returns a *RuleRef immediately
// usable inside other rule bodies, and a later Grammar.Define binds its body.
// A *RuleRef is the indirection point; combinators never allocate a tree node
// themselves, only named rules do, so the shape of the produced tree is
// entirely controlled by where the grammar author chooses to name a
// subexpression.
package comb
