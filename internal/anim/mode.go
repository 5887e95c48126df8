package anim

import (
	"fmt"
	"strings"
)

// Mode selects how transition states form.
type Mode int

const (
	// Associative: A + B → [A-B]‡, two bodies combine into an ordered complex.
	Associative Mode = iota
	// Dissociative: A-B → [A...B]‡, one body splits into disordered fragments.
	Dissociative
)

// Modes lists every mode in display order.
var Modes = []Mode{Associative, Dissociative}

func (m Mode) String() string {
	switch m {
	case Associative:
		return "associative"
	case Dissociative:
		return "dissociative"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Title is the header drawn in the top-left corner of every frame.
func (m Mode) Title() string {
	switch m {
	case Associative:
		return "Associative: A + B → [A-B]‡ (Ordered)"
	case Dissociative:
		return "Dissociative: A-B → [A...B]‡ (Disordered)"
	default:
		return ""
	}
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == Associative {
		return Dissociative
	}
	return Associative
}

// ParseMode accepts "associative" or "dissociative" (case-insensitive,
// "assoc"/"dissoc" also allowed).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "associative", "assoc":
		return Associative, nil
	case "dissociative", "dissoc":
		return Dissociative, nil
	}
	return Associative, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
