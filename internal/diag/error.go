package diag

import "fmt"

// Error is the capability every user-facing error family implements.
// Concrete families are closed enumerations: each variant carries a
// fixed index under the family prefix, from which the public code is
// derived.
type Error interface {
	// error supplies the human-readable rendering of the condition.
	error

	// ErrorCode returns the family prefix and the variant index. The
	// prefix is fixed per family; indexes are append-only and never
	// reused.
	ErrorCode() (prefix string, index int)

	// JSONMessage returns the message used in machine output. It may
	// differ from Error() but must be plain text, never styled.
	JSONMessage() string
}

// Suggester is optionally implemented by families that can point at the
// offending token and offer replacements. Families without suggestions
// simply do not implement it.
type Suggester interface {
	// Suggestions returns the offending token ("" when unknown) and
	// candidate replacements.
	Suggestions() (offendingToken string, suggestions []string)
}

// CodeDigits is the zero-padded width of the index part of a code.
// Published documentation URLs embed codes of exactly this shape, so
// changing the width is a breaking change.
const CodeDigits = 4

// DocBase is the documentation root that every rendered diagnostic
// links into.
const DocBase = "https://docs.rosh.sh/"

// CodeOf derives the stable public code of an error, prefix plus the
// zero-padded variant index.
func CodeOf(e Error) string {
	prefix, index := e.ErrorCode()
	return fmt.Sprintf("%s%0*d", prefix, CodeDigits, index)
}

// DocURL returns the documentation link published for an error's code.
func DocURL(e Error) string {
	return DocBase + CodeOf(e) + ".html"
}

// SuggestionsOf extracts the offending token and suggestion list from an
// error, defaulting to none when the family implements no Suggester.
func SuggestionsOf(e Error) (offendingToken string, suggestions []string) {
	if s, ok := e.(Suggester); ok {
		return s.Suggestions()
	}
	return "", nil
}
