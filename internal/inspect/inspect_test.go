package inspect

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/parser"
)

func init() {
	color.NoColor = true
}

func TestDumpNode_WritesKindAndLiteralPerLine(t *testing.T) {
	root, errs := parser.Parse("t.mg", "1 + 2")
	require.Empty(t, errs)

	var buf bytes.Buffer
	DumpNode(&buf, root)

	out := buf.String()
	assert.Contains(t, out, "module")
	assert.Contains(t, out, "+ [")
	assert.Contains(t, out, "integer 1")
	assert.Contains(t, out, "integer 2")
}

func TestDumpTokens_WritesOneLinePerSignificantToken(t *testing.T) {
	src := "x = 1"
	toks := lexer.Significant(lexer.Tokenize(src))

	var buf bytes.Buffer
	DumpTokens(&buf, toks)

	lines := 0
	for _, b := range buf.String() {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, len(toks), lines)
}

func TestDumpJSON_RoundTripsKindAndChildren(t *testing.T) {
	root, errs := parser.Parse("t.mg", "1 + 2")
	require.Empty(t, errs)

	var buf bytes.Buffer
	require.NoError(t, DumpJSON(&buf, root))

	var got nodeJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "module", got.Kind)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "+", got.Children[0].Literal)
	require.Len(t, got.Children[0].Children, 2)
	assert.Equal(t, "1", got.Children[0].Children[0].Literal)
}

func TestNodeLiteral_PerKindPayload(t *testing.T) {
	root, errs := parser.Parse("t.mg", `ident`)
	require.Empty(t, errs)
	assert.Equal(t, "ident", nodeLiteral(root.Children[0]))
}
