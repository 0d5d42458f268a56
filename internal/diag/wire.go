package diag

import "rosh/internal/source"

// CompilationError is the JSON-serializable shape of a rendered
// diagnostic. The field names and their ce_ prefixes are a stable wire
// contract consumed by editors and tooling; do not rename them.
type CompilationError struct {
	Suggestions    []string `json:"ce_suggestions"`
	ErrorMessage   string   `json:"ce_errorMessage"`
	Position       []int    `json:"ce_position"` // [] or exactly [line, column]
	OffendingToken *string  `json:"ce_offendingToken"`
}

// NewCompilationError assembles the wire record for an error thrown at a
// location.
func NewCompilationError(loc source.Location, e Error) CompilationError {
	offending, suggestions := SuggestionsOf(e)
	if suggestions == nil {
		suggestions = []string{}
	}
	var token *string
	if offending != "" {
		token = &offending
	}
	return CompilationError{
		Suggestions:    suggestions,
		ErrorMessage:   e.JSONMessage(),
		Position:       loc.LineCol(),
		OffendingToken: token,
	}
}
