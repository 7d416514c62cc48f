// Package lang classifies source files into the closed set of languages the
// crawler understands. Anything else is Unknown and yields zero imports.
package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source language.
type Language string

const (
	// Python covers .py and .pyw sources
	Python Language = "python"
	// CSharp covers .cs sources
	CSharp Language = "csharp"
	// JavaScript covers .js/.jsx/.ts/.tsx; TypeScript shares the same
	// import and require statement forms so it does not get its own variant
	JavaScript Language = "javascript"
	// Unknown is every other extension
	Unknown Language = "unknown"
)

// FromPath returns the language for a file path based on its extension.
func FromPath(path string) Language {
	return FromExtension(strings.ToLower(filepath.Ext(path)))
}

// FromExtension returns the language for a file extension (".py", ".cs", ...).
func FromExtension(ext string) Language {
	switch ext {
	case ".py", ".pyw":
		return Python
	case ".cs":
		return CSharp
	case ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs":
		return JavaScript
	default:
		return Unknown
	}
}
