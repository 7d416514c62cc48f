// Package parse wraps tree-sitter for import extraction.
package parse

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Parser wraps a tree-sitter parser configured for Python.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a new tree-sitter parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// PythonImports parses Python source and returns the dotted module names
// imported by "import X" and "from X import Y" statements.
//
// The second return value reports whether the parse succeeded. A source
// file with syntax errors returns ok=false so the caller can run its regex
// fallback instead; tree-sitter itself does not fail on malformed input, it
// produces a tree containing error nodes.
func (p *Parser) PythonImports(ctx context.Context, source []byte) ([]string, bool) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, false
	}
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, false
	}

	var imports []string
	collectPythonImports(root, source, &imports)
	return imports, true
}

func collectPythonImports(node *sitter.Node, source []byte, out *[]string) {
	switch node.Type() {
	case "import_statement":
		// import a.b, c as d
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			switch child.Type() {
			case "dotted_name":
				*out = append(*out, child.Content(source))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					*out = append(*out, name.Content(source))
				}
			}
		}
		return
	case "import_from_statement":
		// from a.b import c
		if mod := node.ChildByFieldName("module_name"); mod != nil {
			*out = append(*out, mod.Content(source))
		}
		return
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectPythonImports(node.NamedChild(i), source, out)
	}
}
