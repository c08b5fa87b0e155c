package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScannerInlineText(t *testing.T) {
	s := New()
	id := s.Submit(Request{Text: "x + y = 10\nx - y = 2\n"})

	result, ok := s.Wait(id)
	if !ok {
		t.Fatalf("Wait(%q) = _, false", id)
	}
	if result.Status != StatusCompleted {
		t.Fatalf("Status = %v, want %v", result.Status, StatusCompleted)
	}
	if len(result.Documents) != 1 {
		t.Fatalf("len(Documents) = %d, want 1", len(result.Documents))
	}

	doc := result.Documents[0]
	if doc.Path != "(inline)" {
		t.Errorf("Path = %q, want %q", doc.Path, "(inline)")
	}
	if doc.Equations != 2 {
		t.Errorf("Equations = %d, want 2", doc.Equations)
	}
	if doc.Canonical != "x + y = 10\nx - y = 2\n" {
		t.Errorf("Canonical = %q", doc.Canonical)
	}
	if !doc.Solved() {
		t.Fatalf("Solved() = false, SolveError = %q", doc.SolveError)
	}
	pairs := doc.Pairs()
	if len(pairs) != 2 || pairs[0].Name != "x" || pairs[0].Value != 6 || pairs[1].Name != "y" || pairs[1].Value != 4 {
		t.Errorf("Pairs() = %v, want x=6 y=4", pairs)
	}
}

func TestScannerDiagnosticsSkipSolve(t *testing.T) {
	s := New()
	id := s.Submit(Request{Text: "x = 1 = 2\n"})

	result, _ := s.Wait(id)
	if result.Status != StatusCompleted {
		t.Fatalf("Status = %v, want %v", result.Status, StatusCompleted)
	}
	doc := result.Documents[0]
	if len(doc.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(doc.Diagnostics))
	}
	if doc.Solved() {
		t.Error("Solved() = true for a document with diagnostics")
	}
}

func TestScannerUnsolvableDocument(t *testing.T) {
	s := New()
	id := s.Submit(Request{Text: "x + y = 10\n"})

	result, _ := s.Wait(id)
	doc := result.Documents[0]
	if doc.Solved() {
		t.Error("Solved() = true for an underdetermined system")
	}
	if doc.SolveError == "" {
		t.Error("SolveError is empty, want a message")
	}
}

func TestScannerVerifiesSolution(t *testing.T) {
	s := New()
	id := s.Submit(Request{Text: "x + y = 10\nx - y = 2\n", Tolerance: 1e-6})

	result, _ := s.Wait(id)
	doc := result.Documents[0]
	if !doc.Solved() {
		t.Fatalf("Solved() = false, SolveError = %q", doc.SolveError)
	}
	if doc.VerifyError != "" {
		t.Errorf("VerifyError = %q, want empty", doc.VerifyError)
	}
}

func TestScannerDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.eqn":     "x = 1\n",
		"b.eqn":     "y = 2\n",
		"notes.txt": "ignored\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := New()
	id := s.Submit(Request{Path: dir})

	result, _ := s.Wait(id)
	if result.Status != StatusCompleted {
		t.Fatalf("Status = %v, want %v", result.Status, StatusCompleted)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("len(Documents) = %d, want 2", len(result.Documents))
	}
	if result.Total != 2 || result.Progress != 2 {
		t.Errorf("Progress = %d/%d, want 2/2", result.Progress, result.Total)
	}
	if result.ProgressPercent() != 100 {
		t.Errorf("ProgressPercent() = %d, want 100", result.ProgressPercent())
	}
	// Walk output is sorted.
	if !strings.HasSuffix(result.Documents[0].Path, "a.eqn") {
		t.Errorf("Documents[0].Path = %q, want a.eqn first", result.Documents[0].Path)
	}
}

func TestScannerMissingPath(t *testing.T) {
	s := New()
	id := s.Submit(Request{Path: filepath.Join(t.TempDir(), "does-not-exist")})

	result, _ := s.Wait(id)
	if result.Status != StatusFailed {
		t.Errorf("Status = %v, want %v", result.Status, StatusFailed)
	}
	if result.Error == "" {
		t.Error("Error is empty, want a message")
	}
}

func TestScannerGetAndList(t *testing.T) {
	s := New()
	first := s.Submit(Request{Text: "x = 1\n"})
	second := s.Submit(Request{Text: "y = 2\n"})

	s.Wait(first)
	s.Wait(second)

	if _, ok := s.Get(first); !ok {
		t.Errorf("Get(%q) = _, false", first)
	}
	if _, ok := s.Get("999"); ok {
		t.Error(`Get("999") = _, true`)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}
	if list[0].ID != first || list[1].ID != second {
		t.Errorf("List() order = %q, %q, want %q, %q", list[0].ID, list[1].ID, first, second)
	}
}
