package types

import "github.com/nanoshift/nanogo/nanoerr"

// Subtype is advisory metadata for the node describing what kind of
// transaction a state block represents. It is never part of the hashed
// preimage (see package block) — only the preamble, account, previous,
// representative, balance and link are.
type Subtype int

const (
	SubtypeUnknown Subtype = iota
	SubtypeSend
	SubtypeReceive
	SubtypeOpen
	SubtypeChange
	SubtypeEpoch
)

func (s Subtype) String() string {
	switch s {
	case SubtypeSend:
		return "send"
	case SubtypeReceive:
		return "receive"
	case SubtypeOpen:
		return "open"
	case SubtypeChange:
		return "change"
	case SubtypeEpoch:
		return "epoch"
	default:
		return "unknown"
	}
}

// SubtypeFromString parses the lowercase wire form.
func SubtypeFromString(s string) (Subtype, error) {
	switch s {
	case "send":
		return SubtypeSend, nil
	case "receive":
		return SubtypeReceive, nil
	case "open":
		return SubtypeOpen, nil
	case "change":
		return SubtypeChange, nil
	case "epoch":
		return SubtypeEpoch, nil
	default:
		return SubtypeUnknown, nanoerr.New(nanoerr.InvalidSubtype)
	}
}

func (s Subtype) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Subtype) UnmarshalText(text []byte) error {
	v, err := SubtypeFromString(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
