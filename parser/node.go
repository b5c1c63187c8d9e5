package parser

import "github.com/modelgen-run/modelgen/lexer"

// Kind tags an AST node. The set is fixed and mirrors the node inventory
// the grammar actually produces: there is no open extension point, so a
// plain enum (rather than a visitor hierarchy) is the right shape — see
// DESIGN.md for why this generic-node design was chosen over per-kind
// structs.
type Kind int

const (
	KModule Kind = iota
	KBlock
	KIdent
	KInt
	KFloat
	KString
	KTuple
	KList
	KMap
	KCall
	KIndex
	KUnaryOp
	KBinOp
	KFor
	KIf
	KProc
	KEmit
	KReturn
	KBreak
	KContinue
)

var kindNames = [...]string{
	KModule: "module", KBlock: "block", KIdent: "identifier",
	KInt: "integer", KFloat: "float", KString: "string",
	KTuple: "tuple", KList: "list", KMap: "map", KCall: "call", KIndex: "index",
	KUnaryOp: "unary-op", KBinOp: "bin-op", KFor: "for", KIf: "if",
	KProc: "procedure", KEmit: "emit", KReturn: "return",
	KBreak: "break", KContinue: "continue",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Node is the single AST node shape every construct is built from: a kind
// tag, the anchor token (the operator or keyword that identifies the
// construct), the inclusive token span it covers, an ordered list of
// children, and a parent back-pointer used only for diagnostics.
//
// A nil entry in Children is meaningful in exactly one place — slice index
// bounds (KIndex with 3 children) — where it marks an omitted bound.
type Node struct {
	Kind       Kind
	Anchor     *lexer.Token
	TokenBegin int
	TokenEnd   int
	Children   []*Node
	Parent     *Node

	Ident    string
	IntVal   int32
	FloatVal float32
	StrVal   string
	Op       *lexer.Token // operator token for KUnaryOp/KBinOp
}

func newNode(kind Kind, anchor *lexer.Token, begin, end int, children ...*Node) *Node {
	n := &Node{Kind: kind, Anchor: anchor, TokenBegin: begin, TokenEnd: end, Children: children}
	for _, c := range children {
		if c != nil {
			c.Parent = n
		}
	}
	return n
}

// Walk invokes fn for n and every descendant in pre-order. This is the
// visitor-free traversal spec.md §1 calls for: callers that need per-kind
// behavior switch on Kind themselves, rather than implementing an
// interface with one method per node type.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// KindSequence returns the pre-order sequence of kinds under n. Used by the
// parser's dump-and-reparse-shape test.
func KindSequence(n *Node) []Kind {
	var out []Kind
	Walk(n, func(c *Node) { out = append(out, c.Kind) })
	return out
}
