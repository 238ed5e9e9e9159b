package typesystem

// Type is a static type of datelang. Only Int and Date are storable;
// String exists for print items, None for procedures without a declared
// return type and Unknown when inference has nothing to go on.
type Type string

const (
	Int     Type = "int"
	Date    Type = "date"
	String  Type = "string"
	None    Type = "none"
	Unknown Type = "unknown"
)

func (t Type) String() string { return string(t) }

// Storable reports whether values of t may live in a symbol slot or be
// declared as a formal or return type.
func (t Type) Storable() bool {
	return t == Int || t == Date
}

// FromName maps a type token from source (the IDENT in `x[int]` or
// `return date`) to a Type. The node-kind spellings of literals are
// accepted as well since older AST producers annotate with them.
func FromName(name string) (Type, bool) {
	switch name {
	case "int", "int_literal":
		return Int, true
	case "date", "date_literal":
		return Date, true
	}
	return Unknown, false
}

// Compatible reports whether an actual of type actual may be passed where
// formal is declared. Unknown is compatible with everything; the runtime
// catches what static inference cannot see.
func Compatible(formal, actual Type) bool {
	if formal == Unknown || actual == Unknown {
		return true
	}
	return formal == actual
}
