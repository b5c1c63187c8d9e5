package eval

import (
	"fmt"

	"github.com/modelgen-run/modelgen/parser"
)

// RuntimeError is every fatal error the evaluator produces: spec §6's
// "filename:line:col: Error: <message>" format, anchored at the AST node
// whose evaluation failed. Spec §7 is explicit that every error here is
// fatal to the running instance — this package models that as an
// ordinary Go error returned up the call chain, short-circuiting the AST
// walk, not a panic; the CLI front
// end is what turns a returned error into a printed message and a
// process exit.
type RuntimeError struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s:%d:%d: Error: %s", e.Filename, e.Line, e.Column, e.Msg)
}

// errorf builds a RuntimeError anchored at n, formatted like the rest of
// this package's diagnostics.
func (e *Evaluator) errorf(n *parser.Node, format string, args ...any) error {
	filename := "<unknown>"
	if mod := e.currentModule(); mod != nil {
		filename = mod.Filename
	}
	line, col := 0, 0
	if n != nil && n.Anchor != nil {
		line, col = n.Anchor.Begin.Line, n.Anchor.Begin.Column
	}
	return &RuntimeError{Filename: filename, Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

// wrap turns any non-RuntimeError (e.g. a value.TypeError from the value
// package, which carries no position) into a RuntimeError anchored at n,
// so every error that escapes the evaluator carries a source position.
// Only *RuntimeError values pass through unchanged; any other error
// (including a parser error that already names a position) is wrapped.
func (e *Evaluator) wrap(n *parser.Node, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*RuntimeError); ok {
		return err
	}
	return e.errorf(n, "%s", err)
}
