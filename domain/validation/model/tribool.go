package model

// TriBool is the result of a check that may not be decidable. The zero value
// is TriBoolUnknown, so a result that was never filled in can't be mistaken for false.
type TriBool uint8

// TriBool values
const (
	TriBoolUnknown TriBool = iota
	TriBoolFalse
	TriBoolTrue
)

// TriBoolFrom converts a decided bool into a TriBool.
func TriBoolFrom(value bool) TriBool {
	if value {
		return TriBoolTrue
	}
	return TriBoolFalse
}

// IsKnown returns true if the check was decided.
func (t TriBool) IsKnown() bool {
	return t == TriBoolFalse || t == TriBoolTrue
}

// IsTrue returns true only if the check was decided and is true.
func (t TriBool) IsTrue() bool {
	return t == TriBoolTrue
}

// Value returns the decided value, and false if the check is unknown.
func (t TriBool) Value() (value bool, ok bool) {
	return t == TriBoolTrue, t.IsKnown()
}

func (t TriBool) String() string {
	switch t {
	case TriBoolFalse:
		return "false"
	case TriBoolTrue:
		return "true"
	default:
		return "unknown"
	}
}

// MarshalText encodes the TriBool as "true", "false" or "unknown".
func (t TriBool) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes the output of MarshalText. Anything else decodes to unknown.
func (t *TriBool) UnmarshalText(text []byte) error {
	switch string(text) {
	case "true":
		*t = TriBoolTrue
	case "false":
		*t = TriBoolFalse
	default:
		*t = TriBoolUnknown
	}
	return nil
}
