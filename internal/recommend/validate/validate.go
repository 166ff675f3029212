// Package validate gates parsed model payloads before they become a
// response. Checks run in order; the first failure rejects the payload as
// an upstream schema violation. The only repair performed is truncating
// categories that exceed the requested cap.
package validate

import (
	"encoding/json"
	"fmt"
	"log"

	"book-scout/backend/internal/model"
)

// Payload is a parsed model response moving through the check pipeline.
type Payload struct {
	Doc             map[string]any
	MaxPerCategory  int
	RequireMetadata bool
	Warnings        []string
}

// Result is the outcome of a single check.
type Result struct {
	OK     bool
	Reason string
}

// OK returns a passing result.
func OK() Result {
	return Result{OK: true}
}

// Fail returns a failing result with a reason for logging and errors.
func Fail(reason string) Result {
	return Result{Reason: reason}
}

// Check is a single validation rule over a payload.
type Check interface {
	// Name identifies the check in logs and error messages.
	Name() string
	Check(p *Payload) Result
}

// Pipeline runs checks in sequence.
type Pipeline struct {
	checks []Check
}

// NewPipeline creates a pipeline from the given checks.
func NewPipeline(checks ...Check) *Pipeline {
	return &Pipeline{checks: checks}
}

// Default returns the pipeline applied to live model output.
func Default() *Pipeline {
	return NewPipeline(ResultsKey{}, Categories{}, Cap{})
}

// Run applies every check. The first failure stops the pipeline and is
// returned as an error naming the check that rejected the payload.
func (pl *Pipeline) Run(p *Payload) error {
	for _, c := range pl.checks {
		res := c.Check(p)
		if res.OK {
			continue
		}
		log.Printf("[VALIDATE] %s: FAIL - %s", c.Name(), res.Reason)
		return fmt.Errorf("%s: %s", c.Name(), res.Reason)
	}
	return nil
}

// ResultSet decodes the validated payload's results object into the typed
// form. Unknown fields in entries are dropped.
func (p *Payload) ResultSet() (model.ResultSet, error) {
	raw, err := json.Marshal(p.Doc["results"])
	if err != nil {
		return model.ResultSet{}, fmt.Errorf("re-encode results: %w", err)
	}
	var rs model.ResultSet
	if err := json.Unmarshal(raw, &rs); err != nil {
		return model.ResultSet{}, fmt.Errorf("decode results: %w", err)
	}
	return rs, nil
}

// Canonicalize lifts the shapes real models return into the canonical
// {"results": {...}} document: a document already carrying "results" is
// kept, top-level fiction/nonfiction arrays are wrapped, and a bare JSON
// array is treated as fiction-only. Anything else is rejected.
func Canonicalize(v any) (map[string]any, bool) {
	switch doc := v.(type) {
	case map[string]any:
		if _, ok := doc["results"]; ok {
			return doc, true
		}
		_, hasFiction := doc["fiction"]
		_, hasNonfiction := doc["nonfiction"]
		if hasFiction || hasNonfiction {
			return map[string]any{"results": doc}, true
		}
		return nil, false
	case []any:
		return map[string]any{"results": map[string]any{"fiction": doc, "nonfiction": []any{}}}, true
	default:
		return nil, false
	}
}
