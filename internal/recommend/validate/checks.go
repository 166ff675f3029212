package validate

import "fmt"

// ResultsKey requires the payload to be an object with a "results" object.
type ResultsKey struct{}

func (ResultsKey) Name() string { return "results_key" }

func (ResultsKey) Check(p *Payload) Result {
	raw, ok := p.Doc["results"]
	if !ok {
		return Fail(`missing "results" key`)
	}
	if _, ok := raw.(map[string]any); !ok {
		return Fail(`"results" is not an object`)
	}
	return OK()
}

// Categories requires fiction/nonfiction to be arrays when present and
// fills absent categories with empty arrays. Runs after ResultsKey.
type Categories struct{}

func (Categories) Name() string { return "categories" }

func (Categories) Check(p *Payload) Result {
	results := p.Doc["results"].(map[string]any)
	for _, category := range []string{"fiction", "nonfiction"} {
		raw, ok := results[category]
		if !ok || raw == nil {
			results[category] = []any{}
			continue
		}
		if _, ok := raw.([]any); !ok {
			return Fail(fmt.Sprintf("%q is not an array", category))
		}
	}
	return OK()
}

// Metadata requires a metadata object when the payload's mode asks for one.
type Metadata struct{}

func (Metadata) Name() string { return "metadata" }

func (Metadata) Check(p *Payload) Result {
	if !p.RequireMetadata {
		return OK()
	}
	raw, ok := p.Doc["metadata"]
	if !ok {
		return Fail(`missing "metadata" key`)
	}
	if _, ok := raw.(map[string]any); !ok {
		return Fail(`"metadata" is not an object`)
	}
	return OK()
}

// Cap truncates categories that exceed the requested maximum and records a
// warning. A model that over-delivers still produced usable output, so this
// never fails. Runs after Categories.
type Cap struct{}

func (Cap) Name() string { return "cap" }

func (Cap) Check(p *Payload) Result {
	if p.MaxPerCategory < 1 {
		return OK()
	}
	results := p.Doc["results"].(map[string]any)
	for _, category := range []string{"fiction", "nonfiction"} {
		entries, ok := results[category].([]any)
		if !ok || len(entries) <= p.MaxPerCategory {
			continue
		}
		p.Warnings = append(p.Warnings,
			fmt.Sprintf("%s truncated from %d to %d entries", category, len(entries), p.MaxPerCategory))
		results[category] = entries[:p.MaxPerCategory]
	}
	return OK()
}
