package diag

import "fmt"

// InternalPrefix is the code prefix of the internal-error family.
const InternalPrefix = "RI"

// InternalKind enumerates invariant violations the compiler itself
// should never trigger. Indexes are frozen; append only.
type InternalKind uint8

const (
	// InternalImpossible is a generic broken-invariant report.
	InternalImpossible InternalKind = 0
	// InternalInspectOpaque is an attempt to inspect an opaque
	// universally-quantified value.
	InternalInspectOpaque InternalKind = 1
)

func init() {
	RegisterFamily(InternalPrefix, map[int]string{
		int(InternalImpossible):    "the compiler encountered an impossible state",
		int(InternalInspectOpaque): "attempt to inspect an opaque type variable",
	})
}

// InternalError is an invariant violation inside the compiler. It is
// always fatal, never recoverable, and never caused by user input; its
// message asks the user to report the defect.
type InternalError struct {
	Kind   InternalKind
	Detail string
}

// Impossible reports a broken compiler invariant.
func Impossible(format string, args ...any) InternalError {
	return InternalError{Kind: InternalImpossible, Detail: fmt.Sprintf(format, args...)}
}

// InspectOpaque reports an attempt to look inside an opaque value.
func InspectOpaque(name string) InternalError {
	return InternalError{Kind: InternalInspectOpaque, Detail: name}
}

func (e InternalError) ErrorCode() (string, int) {
	return InternalPrefix, int(e.Kind)
}

func (e InternalError) Error() string {
	switch e.Kind {
	case InternalInspectOpaque:
		return fmt.Sprintf("impossible: cannot inspect opaque value %q; this is a defect in the compiler, please report it", e.Detail)
	default:
		return fmt.Sprintf("impossible: %s; this is a defect in the compiler, please report it", e.Detail)
	}
}

func (e InternalError) JSONMessage() string {
	return e.Error()
}
