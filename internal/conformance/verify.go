package conformance

import "errors"

// ProtocolCheck is the mixin that makes a class verify itself against its
// immediate parent when it is defined:
//
//	impl, err := conformance.Define("Impl", []*conformance.Class{Iface, conformance.ProtocolCheck}, ...)
var ProtocolCheck = newProtocolCheck()

func newProtocolCheck() *Class {
	cls := &Class{
		name:    "InterfaceProtocolCheck",
		methods: map[string]*Method{},
		hook:    protocolCheckHook,
	}
	cls.mro = []*Class{cls}
	return cls
}

func protocolCheckHook(cls *Class, next func() error) error {
	if err := Verify(cls); err != nil {
		return err
	}
	return next()
}

// Verify checks cls against its immediate parent, the class right after it
// in its resolution order. A class without ancestors has nothing to honour.
func Verify(cls *Class) error {
	if len(cls.mro) < 2 {
		return nil
	}
	return VerifyImplementation(cls.mro[1], cls)
}

// VerifyImplementation checks every public method reachable from child
// against parent and returns the first violation. Each method must exist on
// parent, must be overridden rather than inherited, and must declare the same
// parameters in the same order with matching types.
func VerifyImplementation(parent, child *Class) error {
	for _, name := range child.Members() {
		if isDunder(name) {
			continue
		}

		parentMethod, ok := parent.Lookup(name)
		if !ok {
			return newUnimplementedOnParent(child.name, parent.name, name)
		}

		childMethod, _ := child.Lookup(name)
		if parentMethod == childMethod {
			return newNotOverridden(child.name, parent.name, name)
		}

		expected, err := annotations(parent, parentMethod)
		if err != nil {
			return err
		}
		got, err := annotations(child, childMethod)
		if err != nil {
			return err
		}

		if len(expected) != len(got) {
			e := newArityMismatch(name, expected, got)
			e.Class, e.Parent = child.name, parent.name
			return e
		}

		for i := range expected {
			if err := MatchSignature(expected[i], got[i]); err != nil {
				var e *Error
				if errors.As(err, &e) {
					e.Class, e.Parent, e.Method = child.name, parent.name, name
				}
				return err
			}
		}
	}
	return nil
}

// annotations returns the method's annotated parameters, failing on the first
// parameter that carries no type.
func annotations(owner *Class, m *Method) ([]Param, error) {
	for _, p := range m.Params {
		if p.Type.IsZero() {
			return nil, newMissingAnnotation(owner.name, m.Name, p.Name)
		}
	}
	return m.Params, nil
}
