// Package secrecy defines the two-element Public/Secret lattice used to
// propagate taint through contract expressions. The type checker consults
// Meet at every point where two values combine into one result; the rule
// is that once any contributing value is secret, the result is secret.
package secrecy

// Level classifies a value as publicly observable or secret to a single
// participant.
type Level uint8

const (
	// Public values may be observed by every participant and published
	// to chain state. Public is the identity of Meet.
	Public Level = iota
	// Secret values must stay with their owning participant. Secret is
	// absorbing under Meet.
	Secret
)

func (l Level) String() string {
	switch l {
	case Public:
		return "public"
	case Secret:
		return "secret"
	}
	return "unknown"
}

// Meet combines two levels. Secret absorbs: the result is Secret when
// either operand is Secret. Meet is commutative, associative and
// idempotent, with Public as identity.
func Meet(a, b Level) Level {
	if a == Secret || b == Secret {
		return Secret
	}
	return Public
}

// Tagged pairs a payload with its security level.
type Tagged[T any] struct {
	Level Level
	Value T
}

// TagPublic attaches the Public level to a bare value.
func TagPublic[T any](v T) Tagged[T] {
	return Tagged[T]{Level: Public, Value: v}
}

// TagSecret attaches the Secret level to a bare value.
func TagSecret[T any](v T) Tagged[T] {
	return Tagged[T]{Level: Secret, Value: v}
}

// Lower recombines an externally imposed level with a value's existing
// level, keeping the payload untouched. Used when an expression result
// must be demoted because one of its operands was secret even though the
// operation itself is level-agnostic.
func Lower[T any](level Level, v Tagged[T]) Tagged[T] {
	return Tagged[T]{Level: Meet(level, v.Level), Value: v.Value}
}
