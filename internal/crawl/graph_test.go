package crawl

import (
	"testing"

	"crit/internal/testutil"
)

func TestGraphCategoryPrecedence(t *testing.T) {
	g := NewDependencyGraph(t.TempDir())

	if !g.addChanged("a.py") {
		t.Fatal("first add should succeed")
	}
	// Same path can never enter a second category.
	if g.addDirect("a.py") {
		t.Error("changed file must not also become a direct import")
	}
	if g.addTest("a.py") || g.addIndirect("a.py") {
		t.Error("changed file must not enter test or indirect categories")
	}

	if !g.addDirect("b.py") {
		t.Fatal("add direct failed")
	}
	if g.addIndirect("b.py") {
		t.Error("direct import must not also become an indirect dep")
	}

	if g.TotalFiles() != 2 {
		t.Errorf("TotalFiles = %d, want 2", g.TotalFiles())
	}
	if len(g.ChangedFiles) != 1 || len(g.DirectImports) != 1 {
		t.Errorf("unexpected category sizes: %+v", g)
	}
	if len(g.TestFiles) != 0 || len(g.IndirectDeps) != 0 {
		t.Errorf("unexpected category sizes: %+v", g)
	}
}

func TestGraphMarkCircularIsSticky(t *testing.T) {
	g := NewDependencyGraph(t.TempDir())
	if g.HasCircularDependencies {
		t.Fatal("new graph should not be circular")
	}
	g.MarkCircular()
	g.MarkCircular()
	if !g.HasCircularDependencies {
		t.Error("MarkCircular should set the flag")
	}
}

func TestEstimateTokensEmptyGraph(t *testing.T) {
	g := NewDependencyGraph(t.TempDir())
	if got := g.EstimateTokens(); got != 0 {
		t.Errorf("EstimateTokens on empty graph = %d, want 0", got)
	}
}

func TestEstimateTokensUnreadableFile(t *testing.T) {
	g := NewDependencyGraph(t.TempDir())
	g.addChanged("deleted.py")

	// An unreadable file costs the fixed 500-char estimate: 500/4 = 125.
	if got := g.EstimateTokens(); got != 125 {
		t.Errorf("EstimateTokens = %d, want 125", got)
	}
}

func TestEstimateTokensReadsContent(t *testing.T) {
	root := testutil.WriteWorkspace(t, map[string]string{
		"a.py": "aaaaaaaa", // 8 chars
		"b.py": "bbbb",     // 4 chars
	})
	g := NewDependencyGraph(root)
	g.addChanged("a.py")
	g.addDirect("b.py")

	if got := g.EstimateTokens(); got != 3 {
		t.Errorf("EstimateTokens = %d, want 3", got)
	}
}

func TestAllFilesOrder(t *testing.T) {
	g := NewDependencyGraph(t.TempDir())
	g.addChanged("c.py")
	g.addDirect("d.py")
	g.addTest("t.py")
	g.addIndirect("i.py")

	want := []string{"c.py", "d.py", "t.py", "i.py"}
	got := g.AllFiles()
	if len(got) != len(want) {
		t.Fatalf("AllFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllFiles = %v, want %v", got, want)
			break
		}
	}
}
