package lang

import "testing"

func TestFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Language
	}{
		{"python", "src/auth.py", Python},
		{"python windows ext", "gui.pyw", Python},
		{"csharp", "Services/UserService.cs", CSharp},
		{"javascript", "lib/index.js", JavaScript},
		{"jsx", "components/App.jsx", JavaScript},
		{"typescript", "src/main.ts", JavaScript},
		{"tsx", "src/App.tsx", JavaScript},
		{"uppercase extension", "SRC/AUTH.PY", Python},
		{"go is unknown", "main.go", Unknown},
		{"no extension", "Makefile", Unknown},
		{"dotfile", ".gitignore", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromPath(tt.path); got != tt.expected {
				t.Errorf("FromPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
