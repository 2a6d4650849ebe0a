// Package names maps a base record name to the names of every
// generated type in its struct-of-arrays family.
//
// The mapping is a fixed suffix per kind, so it is deterministic and
// injective across kinds for any valid base identifier.
package names

import (
	"strings"
	"unicode"
)

// Family holds the nine generated type names for one base record type.
type Family struct {
	Base     string // the source struct, e.g. "Particle"
	Vec      string // owning container, e.g. "ParticleVec"
	Slice    string // immutable view
	SliceMut string // mutable view
	Ref      string // immutable proxy
	RefMut   string // mutable proxy
	Ptr      string // immutable raw handle
	PtrMut   string // mutable raw handle
	Iter     string // immutable iterator
	IterMut  string // mutable iterator
}

// NewFamily derives the generated type names for a base record name.
func NewFamily(base string) Family {
	return Family{
		Base:     base,
		Vec:      base + "Vec",
		Slice:    base + "Slice",
		SliceMut: base + "SliceMut",
		Ref:      base + "Ref",
		RefMut:   base + "RefMut",
		Ptr:      base + "Ptr",
		PtrMut:   base + "PtrMut",
		Iter:     base + "Iter",
		IterMut:  base + "IterMut",
	}
}

// All returns every generated name in declaration order.
func (f Family) All() []string {
	return []string{
		f.Vec, f.Slice, f.SliceMut,
		f.Ref, f.RefMut,
		f.Ptr, f.PtrMut,
		f.Iter, f.IterMut,
	}
}

// FileName returns the output filename for a base record name,
// e.g. FileName("CheesePlate", "_soa") == "cheese_plate_soa.go".
func FileName(base, suffix string) string {
	return ToSnake(base) + suffix + ".go"
}

// ToSnake converts a CamelCase identifier to snake_case. Consecutive
// upper-case runs stay together ("HTTPServer" -> "http_server").
func ToSnake(name string) string {
	var sb strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(runes[i-1]))) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
