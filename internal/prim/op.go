// Package prim enumerates the primitive operations of the contract
// language together with their canonical display symbols. The catalog is
// closed: adding a primitive means adding both the variant and its
// symbol, nothing is ever inferred.
package prim

// Op represents a primitive operation.
type Op uint8

const (
	// Add is integer addition.
	Add Op = iota // +
	// Sub is integer subtraction.
	Sub // -
	// Mul is integer multiplication.
	Mul // *
	// Div is integer division.
	Div // /
	// Mod is integer remainder.
	Mod // %
	// Lt is the less-than comparison.
	Lt // <
	// Le is the less-than-or-equal comparison.
	Le // <=
	// Eq is integer equality.
	Eq // ==
	// Ge is the greater-than-or-equal comparison.
	Ge // >=
	// Gt is the greater-than comparison.
	Gt // >
	// Lsh is the bitwise left shift.
	Lsh // <<
	// Rsh is the bitwise right shift.
	Rsh // >>
	// BAnd is the bitwise and.
	BAnd // &
	// BOr is the bitwise or.
	BOr // |
	// BXor is the bitwise xor.
	BXor // ^
	// Ite is the ternary conditional.
	Ite // ite
	// DigestEq compares content digests.
	DigestEq // ==
	// AddressEq compares participant addresses.
	AddressEq // ==
	// TokenEq compares fungible-token identifiers.
	TokenEq // ==
	// SelfAddress is the nullary address of the executing contract.
	SelfAddress // selfAddress
	// BytesConcat concatenates byte sequences.
	BytesConcat // concat

	opCount // keep last
)

// Symbol returns the canonical display symbol used by the pretty-printer
// and by code generation.
func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Eq:
		return "=="
	case Ge:
		return ">="
	case Gt:
		return ">"
	case Lsh:
		return "<<"
	case Rsh:
		return ">>"
	case BAnd:
		return "&"
	case BOr:
		return "|"
	case BXor:
		return "^"
	case Ite:
		return "ite"
	case DigestEq:
		return "=="
	case AddressEq:
		return "=="
	case TokenEq:
		return "=="
	case SelfAddress:
		return "selfAddress"
	case BytesConcat:
		return "concat"
	}
	return "invalid"
}

// String returns the variant name for debugging output.
func (o Op) String() string {
	switch o {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Mod:
		return "Mod"
	case Lt:
		return "Lt"
	case Le:
		return "Le"
	case Eq:
		return "Eq"
	case Ge:
		return "Ge"
	case Gt:
		return "Gt"
	case Lsh:
		return "Lsh"
	case Rsh:
		return "Rsh"
	case BAnd:
		return "BAnd"
	case BOr:
		return "BOr"
	case BXor:
		return "BXor"
	case Ite:
		return "Ite"
	case DigestEq:
		return "DigestEq"
	case AddressEq:
		return "AddressEq"
	case TokenEq:
		return "TokenEq"
	case SelfAddress:
		return "SelfAddress"
	case BytesConcat:
		return "BytesConcat"
	}
	return "Invalid"
}

// Ops returns every operation in the catalog in declaration order.
func Ops() []Op {
	out := make([]Op, 0, opCount)
	for o := Op(0); o < opCount; o++ {
		out = append(out, o)
	}
	return out
}
