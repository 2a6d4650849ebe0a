package analyze

// TypeString returns a human-readable representation of a TypeInfo,
// used in diagnostics.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.ID.Name

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}

		return "struct{...}"

	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)

	case TypeKindArray:
		return t.GoType.String()

	case TypeKindMap:
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}

		return TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}

		return t.GoType.String()

	default:
		if t.GoType != nil {
			return t.GoType.String()
		}

		return "<unknown>"
	}
}
