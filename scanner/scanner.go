// Package scanner runs batch parse-and-solve jobs over equation documents.
// Requests are processed by a background worker; results stay addressable by
// id for the web UI and the scan command.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dhamidi/lineq/document"
	"github.com/dhamidi/lineq/format"
	"github.com/dhamidi/lineq/solve"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request names the work to do: a directory or single file to scan, or
// inline document text.
type Request struct {
	ID   string
	Path string
	Text string
	// Tolerance bounds the residual accepted when the solution is checked
	// against the system; zero selects the solver default.
	Tolerance float64
	CreatedAt time.Time
}

// DocumentResult is the outcome for a single document.
type DocumentResult struct {
	Path        string
	Equations   int
	Variables   []string
	Canonical   string
	Diagnostics []document.Diagnostic
	Incomplete  bool
	Solution    *solve.Solution
	SolveError  string
	// VerifyError is set when the solution failed the residual check.
	VerifyError string
}

// Solved reports whether the document produced a usable solution.
func (d *DocumentResult) Solved() bool {
	return d.Solution != nil
}

// VariableValue pairs a variable name with its solved value for display.
type VariableValue struct {
	Name  string
	Value float64
}

// Pairs returns the solution as name/value pairs in variable-index order.
func (d *DocumentResult) Pairs() []VariableValue {
	if d.Solution == nil {
		return nil
	}
	pairs := make([]VariableValue, len(d.Solution.Vars))
	for i, name := range d.Solution.Vars {
		pairs[i] = VariableValue{Name: name, Value: d.Solution.Values[i]}
	}
	return pairs
}

type Result struct {
	ID        string
	Status    Status
	Request   Request
	Documents []*DocumentResult
	Error     string
	Errors    []string
	StartedAt time.Time
	EndedAt   time.Time
	Progress  int
	Total     int
}

func (s *Result) ProgressPercent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Progress * 100) / s.Total
}

type Scanner struct {
	mu       sync.RWMutex
	scans    map[string]*Result
	requests chan Request
	nextID   int
}

func New() *Scanner {
	s := &Scanner{
		scans:    make(map[string]*Result),
		requests: make(chan Request, 100),
	}
	go s.run()
	return s
}

func (s *Scanner) run() {
	for req := range s.requests {
		s.processScan(req)
	}
}

func (s *Scanner) processScan(req Request) {
	s.mu.Lock()
	result := s.scans[req.ID]
	result.Status = StatusInProgress
	result.StartedAt = time.Now()
	s.mu.Unlock()

	var docs []*DocumentResult
	var errors []string

	switch {
	case req.Text != "":
		docs = append(docs, processDocument("(inline)", []byte(req.Text), req.Tolerance))
	case req.Path != "":
		docs, errors = s.scanPath(req.ID, req.Path, req.Tolerance)
	default:
		errors = append(errors, "no path or text provided")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	result.EndedAt = time.Now()
	result.Documents = docs
	result.Errors = errors
	if len(errors) > 0 && len(docs) == 0 {
		result.Status = StatusFailed
		result.Error = errors[0]
	} else {
		result.Status = StatusCompleted
	}
}

func (s *Scanner) scanPath(id, path string, tolerance float64) ([]*DocumentResult, []string) {
	var files []string
	var errors []string

	info, err := os.Stat(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("stat %s: %v", path, err)}
	}

	if info.IsDir() {
		walkErr := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				errors = append(errors, fmt.Sprintf("walk %s: %v", p, err))
				return nil
			}
			if !info.IsDir() && filepath.Ext(p) == document.DefaultExtension {
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			errors = append(errors, fmt.Sprintf("walk %s: %v", path, walkErr))
		}
		sort.Strings(files)
	} else {
		files = append(files, path)
	}

	s.mu.Lock()
	s.scans[id].Total = len(files)
	s.mu.Unlock()

	var docs []*DocumentResult
	for i, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			errors = append(errors, fmt.Sprintf("read %s: %v", file, err))
		} else {
			docs = append(docs, processDocument(file, content, tolerance))
		}

		s.mu.Lock()
		s.scans[id].Progress = i + 1
		s.mu.Unlock()
	}
	return docs, errors
}

// processDocument parses one document and, when it parsed cleanly, attempts
// to solve it and checks the solution's residuals.
func processDocument(path string, content []byte, tolerance float64) *DocumentResult {
	parsed := document.Parse(content)
	doc := &DocumentResult{
		Path:        path,
		Equations:   parsed.System.Equations,
		Variables:   parsed.System.Vars.Names(),
		Diagnostics: parsed.Diagnostics,
		Incomplete:  parsed.Incomplete,
	}
	doc.Canonical = format.Text(parsed.System)

	if len(parsed.Diagnostics) == 0 && !parsed.Incomplete && parsed.System.Equations > 0 {
		sol, err := solve.Solve(parsed.System)
		if err != nil {
			doc.SolveError = err.Error()
		} else {
			doc.Solution = sol
			if bad := solve.Verify(parsed.System, sol, tolerance); len(bad) > 0 {
				doc.VerifyError = fmt.Sprintf("solution check failed for equation(s) %v", bad)
			}
		}
	}
	return doc
}

func (s *Scanner) Submit(req Request) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	req.ID = fmt.Sprintf("%d", s.nextID)
	req.CreatedAt = time.Now()

	s.scans[req.ID] = &Result{
		ID:      req.ID,
		Status:  StatusPending,
		Request: req,
	}

	s.requests <- req
	return req.ID
}

func (s *Scanner) Get(id string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.scans[id]
	return result, ok
}

func (s *Scanner) List() []*Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*Result, 0, len(s.scans))
	for _, r := range s.scans {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// Wait blocks until the scan with the given id leaves the pending and
// in-progress states, polling at a short interval.
func (s *Scanner) Wait(id string) (*Result, bool) {
	for {
		result, ok := s.Get(id)
		if !ok {
			return nil, false
		}
		s.mu.RLock()
		status := result.Status
		s.mu.RUnlock()
		if status == StatusCompleted || status == StatusFailed {
			return result, true
		}
		time.Sleep(10 * time.Millisecond)
	}
}
