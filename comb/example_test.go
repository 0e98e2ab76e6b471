// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"fmt"
	"strconv"

	"github.com/haydenheroux/combpeg/comb"
)

// ExampleGrammar_calculator builds the grammar from scenario S2: a
// left-associative +/- over */ over parenthesized integers, and evaluates
// the resulting tree.
func ExampleGrammar_calculator() {
	g := comb.NewGrammar()
	value := g.Declare("value")
	product := g.Declare("product")
	sum := g.Declare("sum")
	expr := g.Declare("expr")
	num := g.SilentRule("num", comb.Plus(comb.Range('0', '9')))

	g.Define(value, comb.Choice(num, comb.Seq(comb.One('('), expr, comb.One(')'))))
	g.Define(product, comb.List(value, comb.Choice(comb.One('*'), comb.One('/'))))
	g.Define(sum, comb.List(product, comb.Choice(comb.One('+'), comb.One('-'))))
	g.Define(expr, sum)

	var eval func(n comb.Node) int
	evalOperand := func(n comb.Node, operand func(comb.Node) int) int {
		// Operator bytes are unnamed and leave no node, so each operator
		// is read from n's text right after the previous operand.
		children := n.Children()
		v := operand(children[0])
		for i := 1; i < len(children); i++ {
			rhs := operand(children[i])
			switch n.Text()[children[i-1].End()-n.Begin()] {
			case '+':
				v += rhs
			case '-':
				v -= rhs
			case '*':
				v *= rhs
			case '/':
				v /= rhs
			}
		}
		return v
	}
	var evalValue func(n comb.Node) int
	evalValue = func(n comb.Node) int {
		if len(n.Children()) == 0 {
			v, _ := strconv.Atoi(string(n.Text()))
			return v
		}
		return eval(n.Children()[0].Children()[0])
	}
	eval = func(n comb.Node) int {
		return evalOperand(n, func(n comb.Node) int { return evalOperand(n, evalValue) })
	}

	root, ok := g.Parse(expr, comb.NewStringInput("(1+2)/3*5*6-2"))
	if !ok {
		fmt.Println("parse failed")
		return
	}
	fmt.Println(eval(root.Children()[0]))
	// Output:
	// 28
}
