// Package document models whole equation documents: multi-line texts parsed
// with one session per document, plus the workspace the LSP server and the
// batch scanner operate on.
package document

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/lineq/eqn"
	"github.com/dhamidi/lineq/eqn/parser"
)

// DefaultExtension is the file extension for equation documents.
const DefaultExtension = ".eqn"

// Diagnostic is one finding from parsing a document. Line is 0-based;
// Offset is the character index within that line.
type Diagnostic struct {
	Line   int
	Offset int
	Status eqn.Status
}

// Result holds everything parsing one document produced.
type Result struct {
	System      *eqn.System
	Diagnostics []Diagnostic
	// Incomplete is set when the document ends inside an equation, i.e. the
	// last non-blank line ended on a dangling operator.
	Incomplete bool
}

// Parse runs a fresh session over content line by line. The first error
// halts the document; everything accumulated up to that point is kept.
func Parse(content []byte) *Result {
	sess := parser.NewSession()
	sys := eqn.NewSystem()
	result := &Result{System: sys}

	for i, line := range strings.Split(string(content), "\n") {
		outcome := sess.ParseLine(line, sys)
		if outcome.Status.IsError() {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Line:   i,
				Offset: outcome.Offset,
				Status: outcome.Status,
			})
			break
		}
	}
	result.Incomplete = sess.Pending()
	return result
}

// FileInfo is one document tracked by a Workspace.
type FileInfo struct {
	Path    string
	Content []byte
	Result  *Result
}

// Workspace tracks a directory of equation documents, reparsing them as
// they change. The zero value is not usable; call New.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	ext     string
	files   map[string]*FileInfo
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		ext:     DefaultExtension,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// SetExtension overrides the file extension documents are recognized by.
func (w *Workspace) SetExtension(ext string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ext = ext
}

// ScanAll walks the root directory and parses every equation document.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == w.extension() {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) extension() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ext
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

// UpdateFile replaces the tracked content for path and reparses it.
func (w *Workspace) UpdateFile(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		Result:  Parse(content),
	}
	return nil
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns every tracked document path.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	return paths
}

// Completions returns the variable names of the document at path that start
// with prefix, in index order.
func (w *Workspace) Completions(path, prefix string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	f := w.files[path]
	if f == nil || f.Result == nil {
		return nil
	}
	var names []string
	for _, name := range f.Result.System.Vars.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
