package validator

import "fmt"

// Kind identifies which rule surface a field validator exposes.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name so snapshots serialise readably.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
