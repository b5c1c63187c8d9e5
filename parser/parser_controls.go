package parser

import "github.com/modelgen-run/modelgen/lexer"

// parseIf parses `if <cond>: <then> [else: <else>]`. The else clause is
// optional; when present the node has 3 children, otherwise 2.
func (p *Parser) parseIf() *Node {
	ifTok := p.advance() // if
	begin := p.Pos - 1

	cond := p.parseAssignment()
	if cond == nil {
		return nil
	}
	p.expect(lexer.COLON)
	then := p.parseBlock()

	if _, ok := p.match(lexer.ELSE); ok {
		p.expect(lexer.COLON)
		els := p.parseBlock()
		return newNode(KIf, &ifTok, begin, p.Pos-1, cond, then, els)
	}
	return newNode(KIf, &ifTok, begin, p.Pos-1, cond, then)
}

// parseFor parses `for <ident> in <iterable>: <body>`.
func (p *Parser) parseFor() *Node {
	forTok := p.advance() // for
	begin := p.Pos - 1

	identTok, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	ident := newNode(KIdent, &identTok, p.Pos-1, p.Pos-1)
	ident.Ident = identTok.Lit

	p.expect(lexer.IN)
	iter := p.parseAssignment()
	if iter == nil {
		return nil
	}
	p.expect(lexer.COLON)
	body := p.parseBlock()

	return newNode(KFor, &forTok, begin, p.Pos-1, ident, iter, body)
}

// parseProc parses `proc name(params)` (a declaration, 2 children) or
// `proc name(params): body` (a definition, 3 children).
func (p *Parser) parseProc() *Node {
	procTok := p.advance() // proc
	begin := p.Pos - 1

	nameTok, ok := p.expect(lexer.IDENT)
	if !ok {
		return nil
	}
	name := newNode(KIdent, &nameTok, p.Pos-1, p.Pos-1)
	name.Ident = nameTok.Lit

	params := p.parseParamList()

	if _, ok := p.match(lexer.COLON); ok {
		body := p.parseBlock()
		return newNode(KProc, &procTok, begin, p.Pos-1, name, params, body)
	}
	return newNode(KProc, &procTok, begin, p.Pos-1, name, params)
}

// parseParamList parses `(name, name = default, ...)`. Each parameter is
// either a bare identifier (required) or `ident = expr` (optional,
// represented as a KBinOp with an ASSIGN operator), collected as the
// children of a KList node used purely as a syntactic container.
func (p *Parser) parseParamList() *Node {
	lparen, _ := p.expect(lexer.LPAREN)
	begin := p.Pos - 1
	var params []*Node
	if !p.check(lexer.RPAREN) {
		for {
			nameTok, ok := p.expect(lexer.IDENT)
			if !ok {
				break
			}
			name := newNode(KIdent, &nameTok, p.Pos-1, p.Pos-1)
			name.Ident = nameTok.Lit

			if eqTok, ok := p.match(lexer.ASSIGN); ok {
				def := p.parseAssignment()
				param := newNode(KBinOp, &eqTok, name.TokenBegin, def.TokenEnd, name, def)
				param.Op = &eqTok
				params = append(params, param)
			} else {
				params = append(params, name)
			}

			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
			if p.check(lexer.RPAREN) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN)
	return newNode(KList, &lparen, begin, p.Pos-1, params...)
}

// parseEmit parses `emit <expr>`.
func (p *Parser) parseEmit() *Node {
	emitTok := p.advance() // emit
	begin := p.Pos - 1
	expr := p.parseAssignment()
	if expr == nil {
		return nil
	}
	return newNode(KEmit, &emitTok, begin, p.Pos-1, expr)
}

// parseReturn parses `return` or `return <expr>`. A bare `return` (no
// value expression follows on the same line) has zero children; the
// evaluator treats that the same as `return null`.
func (p *Parser) parseReturn() *Node {
	retTok := p.advance() // return
	begin := p.Pos - 1
	if p.check(lexer.NEWLINE) || p.check(lexer.EOF) || p.check(lexer.RBRACE) {
		return newNode(KReturn, &retTok, begin, p.Pos-1)
	}
	expr := p.parseAssignment()
	if expr == nil {
		return newNode(KReturn, &retTok, begin, p.Pos-1)
	}
	return newNode(KReturn, &retTok, begin, p.Pos-1, expr)
}

// parseBreak parses the bare `break` statement.
func (p *Parser) parseBreak() *Node {
	tok := p.advance() // break
	return newNode(KBreak, &tok, p.Pos-1, p.Pos-1)
}

// parseContinue parses the bare `continue` statement.
func (p *Parser) parseContinue() *Node {
	tok := p.advance() // continue
	return newNode(KContinue, &tok, p.Pos-1, p.Pos-1)
}
