// Package parser implements a recursive-descent parser for ModelGen over a
// fixed operator-precedence table. It turns a token vector into a Node
// tree (see node.go); it holds no runtime state and knows nothing about
// values — that separation is what lets the evaluator be rewritten without
// touching grammar code.
package parser

import (
	"fmt"

	"github.com/modelgen-run/modelgen/lexer"
)

// Parser walks a flat, grammar-significant token vector (NEWLINE kept,
// WHITESPACE/COMMENT already filtered by lexer.Significant) by index,
// reading the current token via cur (and further ahead via at). Errors are collected rather than
// panicked on, matching the teacher's error-collection convention, but the
// parser stops descending into the current production once it hits one.
type Parser struct {
	Filename string
	Tokens   []lexer.Token
	Pos      int
	Errors   []error
}

// New builds a Parser over src. Tokenizing and filtering trivia happens
// once, up front, so the parser itself only ever walks significant tokens.
func New(filename, src string) *Parser {
	toks := lexer.Significant(lexer.Tokenize(src))
	return &Parser{Filename: filename, Tokens: toks}
}

func (p *Parser) cur() lexer.Token {
	if p.Pos >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1] // EOF
	}
	return p.Tokens[p.Pos]
}

func (p *Parser) at(offset int) lexer.Token {
	i := p.Pos + offset
	if i >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1]
	}
	return p.Tokens[i]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.Pos < len(p.Tokens)-1 {
		p.Pos++
	}
	return t
}

func (p *Parser) check(k lexer.Kind) bool { return p.cur().Kind == k }

func (p *Parser) match(k lexer.Kind) (lexer.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// expect consumes a token of kind k, recording a fatal diagnostic at the
// current position if the token doesn't match — matching spec §4.2's error
// policy ("identifies the source position and the expected token category").
func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if t, ok := p.match(k); ok {
		return t, true
	}
	p.errorf("expected %s, found %s", k, p.cur().Kind)
	return lexer.Token{}, false
}

func (p *Parser) errorf(format string, args ...any) {
	pos := p.cur().Begin
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, fmt.Errorf("%s:%s: %s", p.Filename, pos, msg))
}

func (p *Parser) skipNewlines() {
	for p.check(lexer.NEWLINE) {
		p.advance()
	}
}

// Parse tokenizes and parses an entire module: a newline-separated sequence
// of top-level expressions, terminated by EOF.
func Parse(filename, src string) (*Node, []error) {
	p := New(filename, src)
	root := p.parseModule()
	return root, p.Errors
}

func (p *Parser) parseModule() *Node {
	begin := p.Pos
	anchor := p.cur()
	var children []*Node

	p.skipNewlines()
	for !p.check(lexer.EOF) {
		expr := p.parseExpression()
		if expr != nil {
			children = append(children, expr)
		}
		if len(p.Errors) > 0 && expr == nil {
			// Avoid an infinite loop on unrecoverable input.
			p.advance()
		}
		p.skipNewlines()
	}
	// The loop stops with Pos on the EOF token (advance never moves past
	// it), so TokenEnd lands on EOF.
	n := newNode(KModule, &anchor, begin, p.Pos, children...)
	return n
}

// parseBlock parses `{ newline-separated expressions }`. A colon-prefixed
// single-statement body (no braces) is still represented as a one-child
// KBlock, so the evaluator always walks a uniform shape.
func (p *Parser) parseBlock() *Node {
	if lb, ok := p.match(lexer.LBRACE); ok {
		begin := p.Pos - 1
		var children []*Node
		p.skipNewlines()
		for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
			if expr := p.parseExpression(); expr != nil {
				children = append(children, expr)
			} else {
				p.advance()
			}
			p.skipNewlines()
		}
		p.expect(lexer.RBRACE)
		return newNode(KBlock, &lb, begin, p.Pos-1, children...)
	}

	begin := p.Pos
	anchor := p.cur()
	stmt := p.parseExpression()
	var children []*Node
	if stmt != nil {
		children = append(children, stmt)
	}
	return newNode(KBlock, &anchor, begin, p.Pos-1, children...)
}
