package pace

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is the distance unit paces are expressed in.
type Unit string

const (
	// Mile expresses paces per mile.
	Mile Unit = "mile"
	// Kilometer expresses paces per kilometer.
	Kilometer Unit = "kilometer"
)

const (
	// MarathonMiles is the marathon distance in miles.
	MarathonMiles = 26.2
	// MarathonKilometers is the marathon distance in kilometers.
	MarathonKilometers = 42.195
)

// ErrUnknownUnit is returned by ParseUnit for unsupported text.
var ErrUnknownUnit = errors.New("unknown unit")

// ParseUnit accepts "mile", "mi", "kilometer" and "km" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mile", "miles", "mi":
		return Mile, nil
	case "kilometer", "kilometers", "km":
		return Kilometer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == Mile || u == Kilometer
}

// Distance returns the marathon distance in u, or zero for an unknown unit.
func (u Unit) Distance() float64 {
	switch u {
	case Mile:
		return MarathonMiles
	case Kilometer:
		return MarathonKilometers
	default:
		return 0
	}
}

// Label returns the display suffix for paces in u.
func (u Unit) Label() string {
	switch u {
	case Mile:
		return "min/mi"
	case Kilometer:
		return "min/km"
	default:
		return ""
	}
}

// Short returns the abbreviated unit name.
func (u Unit) Short() string {
	switch u {
	case Mile:
		return "mi"
	case Kilometer:
		return "km"
	default:
		return string(u)
	}
}
