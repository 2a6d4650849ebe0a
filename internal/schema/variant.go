package schema

//go:generate go tool stringer -type=Variant -linecomment -output=variant_string.go

// Variant identifies one generated type of a family, used to key
// annotation and derive passthrough.
type Variant int

const (
	VariantVec      Variant = iota // vec
	VariantSlice                   // slice
	VariantSliceMut                // slice_mut
	VariantRef                     // ref
	VariantRefMut                  // ref_mut
	VariantPtr                     // ptr
	VariantPtrMut                  // ptr_mut
	VariantIter                    // iter
	VariantIterMut                 // iter_mut

	// VariantTotal is the number of variants defined.
	VariantTotal = int(iota)
)

// ParseVariant maps a manifest key to a Variant.
func ParseVariant(s string) (Variant, bool) {
	for v := Variant(0); int(v) < VariantTotal; v++ {
		if v.String() == s {
			return v, true
		}
	}

	return 0, false
}

// Derive identifies an extra method set a generated type can opt into.
type Derive int

const (
	DeriveString Derive = iota // String
	DeriveEqual                // Equal
	DeriveClone                // Clone

	// DeriveTotal is the number of derives defined.
	DeriveTotal = int(iota)
)

// String returns the derive name as written in manifests.
func (d Derive) String() string {
	switch d {
	case DeriveString:
		return "String"
	case DeriveEqual:
		return "Equal"
	case DeriveClone:
		return "Clone"
	default:
		return "Derive(" + string(rune('0'+int(d))) + ")"
	}
}

// ParseDerive maps a manifest derive name to a Derive.
func ParseDerive(s string) (Derive, bool) {
	for d := Derive(0); int(d) < DeriveTotal; d++ {
		if d.String() == s {
			return d, true
		}
	}

	return 0, false
}

// deriveTargets lists which variants each derive may be attached to.
var deriveTargets = map[Derive][]Variant{
	DeriveString: {VariantVec, VariantSlice, VariantSliceMut, VariantRef, VariantRefMut},
	DeriveEqual:  {VariantVec, VariantRef},
	DeriveClone:  {VariantVec},
}

// DeriveAllowed reports whether a derive may target the given variant.
func DeriveAllowed(d Derive, v Variant) bool {
	for _, t := range deriveTargets[d] {
		if t == v {
			return true
		}
	}

	return false
}
