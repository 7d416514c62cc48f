package crawl

import (
	"sort"
	"testing"

	"crit/internal/testutil"
)

func TestFindTestFilesConventions(t *testing.T) {
	root := testutil.WriteWorkspace(t, map[string]string{
		"src/auth.py":             "",
		"tests/test_auth.py":      "",
		"test/auth_test.py":       "",
		"src/auth.test.js":        "",
		"src/auth.spec.ts":        "",
		"tests/test_other.py":     "",
		"src/unrelated.py":        "",
		"tests/deep/test_auth.py": "", // recursive search
	})

	locator := NewTestLocator(root)
	got := locator.FindTestFiles("src/auth.py")
	sort.Strings(got)

	want := []string{
		"src/auth.spec.ts",
		"src/auth.test.js",
		"test/auth_test.py",
		"tests/deep/test_auth.py",
		"tests/test_auth.py",
	}
	if len(got) != len(want) {
		t.Fatalf("FindTestFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindTestFiles = %v, want %v", got, want)
		}
	}
}

func TestFindTestFilesNoMatches(t *testing.T) {
	root := testutil.WriteWorkspace(t, map[string]string{
		"src/auth.py": "",
	})

	locator := NewTestLocator(root)
	if got := locator.FindTestFiles("src/auth.py"); len(got) != 0 {
		t.Errorf("expected no test files, got %v", got)
	}
}

func TestMatchesTestConvention(t *testing.T) {
	tests := []struct {
		name    string
		stem    string
		matches bool
	}{
		{"test_auth.py", "auth", true},
		{"auth_test.go", "auth", true},
		{"auth.test.js", "auth", true},
		{"auth.spec.tsx", "auth", true},
		{"auth.py", "auth", false},
		{"test_other.py", "auth", false},
		{"authx_test.py", "auth", false},
	}

	for _, tt := range tests {
		if got := matchesTestConvention(tt.name, tt.stem); got != tt.matches {
			t.Errorf("matchesTestConvention(%q, %q) = %v, want %v", tt.name, tt.stem, got, tt.matches)
		}
	}
}
