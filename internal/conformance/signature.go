package conformance

// MatchSignature compares one parent (name, type) pair with the child pair at
// the same position. Names must be equal. Types must share a simple name,
// unless the parent declares a type variable whose bound is exactly the
// child's type.
func MatchSignature(parent, child Param) error {
	if parent.Name != child.Name {
		return newNameMismatch(parent.Name, child.Name)
	}

	if parent.Type.Name() != child.Type.Name() {
		if bound, ok := parent.Type.Bound(); ok && bound.Identical(child.Type) {
			return nil
		}
		return newTypeMismatch(parent.Name, parent.Type, child.Type)
	}

	return nil
}
