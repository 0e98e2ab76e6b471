// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb

// RuleTag is a stable identifier for a declared rule, assigned once by a
// Grammar's registry at Declare time. NoRule is reserved for silent rules,
// which never produce a Node and so never need a real tag.
type RuleTag uint64

// NoRule is the sentinel tag carried by silent rules. It never tags a Node
// that actually appears in a tree.
const NoRule RuleTag = 0

// Node is one matched region of the input: a rule tag, the byte span it
// covers, and its ordered children. Only named, non-silent rules produce a
// Node; combinators only ever append to a caller-supplied child list.
//
// A Node's Text is a subslice of the Input it was parsed from (zero-copy);
// the caller of Grammar.Parse must keep that Input's backing array alive for
// as long as any Node from it is in use.
type Node struct {
	tag      RuleTag
	begin    int
	end      int
	line     int
	column   int
	text     []byte
	children []Node
}

// Tag returns the rule tag that produced this node.
func (n Node) Tag() RuleTag { return n.tag }

// Begin returns the byte offset, within the original Input, where this
// node's span starts.
func (n Node) Begin() int { return n.begin }

// End returns the byte offset, within the original Input, where this node's
// span ends (exclusive).
func (n Node) End() int { return n.end }

// Line returns the 1-based line number of the node's first byte.
func (n Node) Line() int { return n.line }

// Column returns the 0-based column of the node's first byte.
func (n Node) Column() int { return n.column }

// Text returns the raw bytes this node matched, a view over the original
// Input's backing array.
func (n Node) Text() []byte { return n.text }

// Children returns this node's ordered child nodes. It is nil, not an empty
// non-nil slice, for a leaf.
func (n Node) Children() []Node { return n.children }
