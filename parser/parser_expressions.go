package parser

import "github.com/modelgen-run/modelgen/lexer"

// Operator precedence, highest to lowest binding, per spec §4.2:
// multiplicative > additive > relational > equality > logical-and >
// logical-or > assignment family. Each level is its own recursive-descent
// function rather than a Pratt dispatch table — ModelGen's table is small
// and fixed, so one function per level reads more directly as the grammar.

// parseExpression is the entry point for any expression-statement; it is
// also what a block/module calls for each top-level construct, since
// control-flow forms (if/for/proc/emit/return/break/continue) are
// themselves expressions here.
func (p *Parser) parseExpression() *Node {
	switch p.cur().Kind {
	case lexer.IF:
		return p.parseIf()
	case lexer.FOR:
		return p.parseFor()
	case lexer.PROC:
		return p.parseProc()
	case lexer.EMIT:
		return p.parseEmit()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	default:
		return p.parseAssignment()
	}
}

// parseAssignment implements the right-associative assignment family by
// recursing into itself on the RHS instead of looping.
func (p *Parser) parseAssignment() *Node {
	left := p.parseOr()
	if left == nil {
		return nil
	}
	switch p.cur().Kind {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PERCENT_EQ:
		op := p.advance()
		right := p.parseAssignment()
		if right == nil {
			return nil
		}
		return newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseOr() *Node {
	left := p.parseAnd()
	for left != nil && p.check(lexer.OR) {
		op := p.advance()
		right := p.parseAnd()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseAnd() *Node {
	left := p.parseEquality()
	for left != nil && p.check(lexer.AND) {
		op := p.advance()
		right := p.parseEquality()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseEquality() *Node {
	left := p.parseRelational()
	for left != nil && (p.check(lexer.EQ) || p.check(lexer.NE)) {
		op := p.advance()
		right := p.parseRelational()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseRelational() *Node {
	left := p.parseAdditive()
	for left != nil && (p.check(lexer.LT) || p.check(lexer.LE) || p.check(lexer.GT) || p.check(lexer.GE)) {
		op := p.advance()
		right := p.parseAdditive()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseAdditive() *Node {
	left := p.parseMultiplicative()
	for left != nil && (p.check(lexer.PLUS) || p.check(lexer.MINUS)) {
		op := p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

func (p *Parser) parseMultiplicative() *Node {
	left := p.parseUnary()
	for left != nil && (p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.DSLASH) || p.check(lexer.PERCENT)) {
		op := p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		left = newNode(KBinOp, &op, left.TokenBegin, right.TokenEnd, left, right).withOp(&op)
	}
	return left
}

// parseUnary handles the right-binding prefix operators `+ - not`, which
// bind tighter than any binary operator (recursing into parseUnary again
// lets `- - x` stack).
func (p *Parser) parseUnary() *Node {
	switch p.cur().Kind {
	case lexer.PLUS, lexer.MINUS, lexer.NOT:
		op := p.advance()
		opIdx := p.Pos - 1
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return newNode(KUnaryOp, &op, opIdx, operand.TokenEnd, operand).withOp(&op)
	default:
		return p.parsePostfix()
	}
}

// withOp stamps the operator token onto a freshly built bin-op/unary-op
// node; a small helper so the precedence ladder above stays one line per
// level.
func (n *Node) withOp(op *lexer.Token) *Node {
	n.Op = op
	return n
}

// parsePostfix parses call and index suffixes, which chain without limit:
// `f(x)[0](y)` is legal.
func (p *Parser) parsePostfix() *Node {
	n := p.parsePrimary()
	for n != nil {
		switch p.cur().Kind {
		case lexer.LPAREN:
			n = p.parseCall(n)
		case lexer.LBRACKET:
			n = p.parseIndex(n)
		default:
			return n
		}
	}
	return n
}

func (p *Parser) parseCall(callee *Node) *Node {
	lparen := p.advance() // (
	args := []*Node{callee}
	if !p.check(lexer.RPAREN) {
		for {
			arg := p.parseAssignment()
			if arg == nil {
				break
			}
			args = append(args, arg)
			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
			if p.check(lexer.RPAREN) {
				break // trailing comma
			}
		}
	}
	p.expect(lexer.RPAREN)
	return newNode(KCall, &lparen, callee.TokenBegin, p.Pos-1, args...)
}

// parseIndex parses `target[key]` or the slice form `target[low:high]`
// (either bound may be omitted, represented as a nil child).
func (p *Parser) parseIndex(target *Node) *Node {
	lbracket := p.advance() // [

	var low, high *Node
	sawColon := false
	if !p.check(lexer.COLON) && !p.check(lexer.RBRACKET) {
		low = p.parseAssignment()
	}
	if _, ok := p.match(lexer.COLON); ok {
		sawColon = true
		if !p.check(lexer.RBRACKET) {
			high = p.parseAssignment()
		}
	}
	p.expect(lexer.RBRACKET)

	if sawColon {
		return newNode(KIndex, &lbracket, target.TokenBegin, p.Pos-1, target, low, high)
	}
	return newNode(KIndex, &lbracket, target.TokenBegin, p.Pos-1, target, low)
}

func (p *Parser) parsePrimary() *Node {
	tok := p.cur()
	switch tok.Kind {
	case lexer.INT:
		p.advance()
		n := newNode(KInt, &tok, p.Pos-1, p.Pos-1)
		n.IntVal = tok.IntVal
		return n
	case lexer.FLOAT:
		p.advance()
		n := newNode(KFloat, &tok, p.Pos-1, p.Pos-1)
		n.FloatVal = tok.FloatVal
		return n
	case lexer.STRING:
		p.advance()
		n := newNode(KString, &tok, p.Pos-1, p.Pos-1)
		n.StrVal = tok.StrVal
		return n
	case lexer.IDENT:
		p.advance()
		n := newNode(KIdent, &tok, p.Pos-1, p.Pos-1)
		n.Ident = tok.Lit
		return n
	case lexer.LPAREN:
		return p.parseTupleOrGroup()
	case lexer.LBRACKET:
		return p.parseList()
	case lexer.LBRACE:
		return p.parseMapLiteral()
	default:
		p.errorf("unexpected token %s", tok.Kind)
		return nil
	}
}

// parseTupleOrGroup implements the rule that `(expr)` with no comma is
// just a parenthesized expression, while `(expr,)` is a one-tuple and
// `(e1, e2, ...)` is an n-tuple.
func (p *Parser) parseTupleOrGroup() *Node {
	lparen := p.advance() // (
	begin := p.Pos - 1

	if _, ok := p.match(lexer.RPAREN); ok {
		return newNode(KTuple, &lparen, begin, p.Pos-1)
	}

	first := p.parseAssignment()
	if first == nil {
		return nil
	}
	if _, ok := p.match(lexer.COMMA); !ok {
		p.expect(lexer.RPAREN)
		return first // plain grouping, not a tuple node
	}

	elems := []*Node{first}
	for !p.check(lexer.RPAREN) {
		e := p.parseAssignment()
		if e == nil {
			break
		}
		elems = append(elems, e)
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return newNode(KTuple, &lparen, begin, p.Pos-1, elems...)
}

// parseMapLiteral parses `{ "key": expr, ... }` (spec §3.3's map kind
// has no dedicated grammar section in §4.2, but §8's scenario 5 exercises
// the literal form directly; keys are restricted to string literals,
// matching spec §4.3's "maps accept string keys"). Each child is a
// 2-child KBinOp-shaped pair node (key, value); a bare `{}` is an empty
// map, and the only other user of a brace-led primary is parseBlock,
// reached only from if/for/proc productions, so there is no grammar
// ambiguity between the two.
func (p *Parser) parseMapLiteral() *Node {
	lbrace := p.advance() // {
	begin := p.Pos - 1
	var pairs []*Node
	if !p.check(lexer.RBRACE) {
		for {
			keyTok, ok := p.expect(lexer.STRING)
			if !ok {
				break
			}
			key := newNode(KString, &keyTok, p.Pos-1, p.Pos-1)
			key.StrVal = keyTok.StrVal

			colon, ok := p.expect(lexer.COLON)
			if !ok {
				break
			}
			val := p.parseAssignment()
			if val == nil {
				break
			}
			pairs = append(pairs, newNode(KBinOp, &colon, key.TokenBegin, val.TokenEnd, key, val))

			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
			if p.check(lexer.RBRACE) {
				break
			}
		}
	}
	p.expect(lexer.RBRACE)
	return newNode(KMap, &lbrace, begin, p.Pos-1, pairs...)
}

func (p *Parser) parseList() *Node {
	lbracket := p.advance() // [
	begin := p.Pos - 1
	var elems []*Node
	if !p.check(lexer.RBRACKET) {
		for {
			e := p.parseAssignment()
			if e == nil {
				break
			}
			elems = append(elems, e)
			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
			if p.check(lexer.RBRACKET) {
				break
			}
		}
	}
	p.expect(lexer.RBRACKET)
	return newNode(KList, &lbracket, begin, p.Pos-1, elems...)
}
