// Package inspect implements the token/AST debug dump and terminal
// pretty-printing spec §1 scopes out of the core. It is a thin
// collaborator used by cmd/modelgen's `--dump` flag, never by eval or
// parser themselves.
//
// Grounded on the teacher's main/print_visitor.go PrintingVisitor
// (indent-tracked recursive dump of each node kind) adapted to this
// repository's single generic parser.Node shape instead of one struct
// per node kind, using fatih/color for kind-tinted output exactly as
// the teacher's repl/repl.go colors REPL output.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/parser"
)

const indentSize = 2

var (
	kindColor  = color.New(color.FgCyan)
	litColor   = color.New(color.FgYellow)
	identColor = color.New(color.FgGreen)
)

// DumpNode writes an indented, colored pre-order dump of root to w,
// one line per node: its kind, its literal payload (if any), and its
// [tokenBegin, tokenEnd] span.
func DumpNode(w io.Writer, root *parser.Node) {
	dumpNode(w, root, 0)
}

func dumpNode(w io.Writer, n *parser.Node, indent int) {
	if n == nil {
		return
	}
	fmt.Fprint(w, strings.Repeat(" ", indent))
	kindColor.Fprintf(w, "%s", n.Kind)
	if lit := nodeLiteral(n); lit != "" {
		fmt.Fprint(w, " ")
		litColor.Fprintf(w, "%s", lit)
	}
	fmt.Fprintf(w, " [%d,%d]\n", n.TokenBegin, n.TokenEnd)
	for _, c := range n.Children {
		dumpNode(w, c, indent+indentSize)
	}
}

// nodeLiteral extracts the scalar payload a node kind carries directly
// (identifiers, literals, operators), for DumpNode's one-line-per-node
// format.
func nodeLiteral(n *parser.Node) string {
	switch n.Kind {
	case parser.KIdent:
		return n.Ident
	case parser.KInt:
		return fmt.Sprintf("%d", n.IntVal)
	case parser.KFloat:
		return fmt.Sprintf("%g", n.FloatVal)
	case parser.KString:
		return fmt.Sprintf("%q", n.StrVal)
	case parser.KBinOp, parser.KUnaryOp:
		if n.Op != nil {
			return n.Op.Lit
		}
	}
	return ""
}

// DumpTokens writes one colored line per significant token: its kind,
// its literal text (if any), and its source position.
func DumpTokens(w io.Writer, toks []lexer.Token) {
	for _, t := range toks {
		kindColor.Fprintf(w, "%-12s", t.Kind)
		if t.Lit != "" {
			fmt.Fprint(w, " ")
			identColor.Fprintf(w, "%q", t.Lit)
		}
		fmt.Fprintf(w, "  %d:%d\n", t.Begin.Line, t.Begin.Column)
	}
}

// nodeJSON is the tree shape DumpJSON serializes — a plain mirror of
// parser.Node with its token-index fields named for readability and
// children recursively expanded, rather than marshaling parser.Node
// directly (its Parent back-pointer makes the tree cyclic for the json
// package, and its *lexer.Token anchor can't usefully round-trip).
type nodeJSON struct {
	Kind       string     `json:"kind"`
	Literal    string     `json:"literal,omitempty"`
	TokenBegin int        `json:"tokenBegin"`
	TokenEnd   int        `json:"tokenEnd"`
	Children   []nodeJSON `json:"children,omitempty"`
}

func toNodeJSON(n *parser.Node) nodeJSON {
	out := nodeJSON{
		Kind:       n.Kind.String(),
		Literal:    nodeLiteral(n),
		TokenBegin: n.TokenBegin,
		TokenEnd:   n.TokenEnd,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toNodeJSON(c))
	}
	return out
}

// DumpJSON marshals root to indented JSON on w — the machine-readable
// counterpart to DumpNode, for tooling that wants the AST shape without
// scraping colored terminal output.
func DumpJSON(w io.Writer, root *parser.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toNodeJSON(root))
}
