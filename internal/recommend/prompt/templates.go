package prompt

// SystemPrompt frames the model as a librarian and pins the output mode.
// Keep this short - every token costs latency.
const SystemPrompt = `You are a careful children's librarian. You suggest age-appropriate fiction and nonfiction books for young readers based on their profile. You always answer with a single JSON document and nothing else.`

// ResponseSchema is the exact shape the model must return. It is embedded
// verbatim in every instruction; downstream mock/replay tooling depends on
// the field set and ordering staying stable.
const ResponseSchema = `{
  "results": {
    "fiction": [
      {
        "title": "string",
        "author": "string",
        "year": 2020,
        "isbn": "string or null",
        "cover_url": "string or null",
        "short_description": "string, at most 250 characters",
        "age_range": "low-high, for example \"8-12\"",
        "why_recommended": "string",
        "tags": ["string"],
        "content_warnings": ["string"] or null,
        "confidence": 0.0
      }
    ],
    "nonfiction": [ { "same shape as fiction entries": "..." } ]
  }
}`
