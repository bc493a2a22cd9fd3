package conformance

import (
	"fmt"
	"strings"
)

// Define creates a class in the default registry. See Registry.Define.
func Define(name string, bases []*Class, methods ...*Method) (*Class, error) {
	return DefaultRegistry.Define(name, bases, methods...)
}

// MustDefine is like Define but panics if the class cannot be defined. It is
// meant for package-level variables so a broken implementation stops the
// program while it initialises.
func MustDefine(name string, bases []*Class, methods ...*Method) *Class {
	cls, err := Define(name, bases, methods...)
	if err != nil {
		panic(fmt.Sprintf("conformance: defining %s: %v", name, err))
	}
	return cls
}

// DefineWithHook creates a class with a hook in the default registry. See
// Registry.DefineWithHook.
func DefineWithHook(name string, bases []*Class, hook Hook, methods ...*Method) (*Class, error) {
	return DefaultRegistry.DefineWithHook(name, bases, hook, methods...)
}

func newClass(name string, bases []*Class, hook Hook, methods []*Method) (*Class, error) {
	cls := &Class{
		name:    name,
		bases:   append([]*Class(nil), bases...),
		methods: make(map[string]*Method, len(methods)),
		hook:    hook,
	}

	for _, b := range bases {
		if b == nil {
			return nil, fmt.Errorf("class %s: nil base", name)
		}
	}

	for _, m := range methods {
		if m == nil {
			return nil, fmt.Errorf("class %s: nil method", name)
		}
		if _, dup := cls.methods[m.Name]; dup {
			return nil, &Error{
				Kind:    KindDuplicateMethod,
				Class:   name,
				Method:  m.Name,
				Message: fmt.Sprintf("Method %s is declared more than once in class '%s'", m.Name, name),
			}
		}
		cls.methods[m.Name] = m
		cls.order = append(cls.order, m.Name)
	}

	mro, err := linearize(cls)
	if err != nil {
		return nil, err
	}
	cls.mro = mro

	return cls, nil
}

// linearize computes the C3 resolution order of cls from its bases' orders.
func linearize(cls *Class) ([]*Class, error) {
	seqs := make([][]*Class, 0, len(cls.bases)+1)
	for _, b := range cls.bases {
		seqs = append(seqs, b.MRO())
	}
	seqs = append(seqs, append([]*Class(nil), cls.bases...))

	out := []*Class{cls}
	for {
		seqs = dropEmpty(seqs)
		if len(seqs) == 0 {
			return out, nil
		}

		var head *Class
		for _, seq := range seqs {
			if !inTail(seq[0], seqs) {
				head = seq[0]
				break
			}
		}
		if head == nil {
			return nil, &Error{
				Kind:    KindInconsistentHierarchy,
				Class:   cls.name,
				Message: fmt.Sprintf("Cannot create a consistent method resolution order for bases %s", baseNames(cls.bases)),
			}
		}

		out = append(out, head)
		for i, seq := range seqs {
			if seq[0] == head {
				seqs[i] = seq[1:]
			}
		}
	}
}

func inTail(c *Class, seqs [][]*Class) bool {
	for _, seq := range seqs {
		for _, k := range seq[1:] {
			if k == c {
				return true
			}
		}
	}
	return false
}

func dropEmpty(seqs [][]*Class) [][]*Class {
	out := seqs[:0]
	for _, s := range seqs {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func baseNames(bases []*Class) string {
	names := make([]string, len(bases))
	for i, b := range bases {
		names[i] = b.name
	}
	return strings.Join(names, ", ")
}

// runHooks invokes the first hook found in ancestors; that hook decides
// whether the rest of the chain runs.
func runHooks(cls *Class, ancestors []*Class) error {
	for i, k := range ancestors {
		if k.hook == nil {
			continue
		}
		rest := ancestors[i+1:]
		return k.hook(cls, func() error {
			return runHooks(cls, rest)
		})
	}
	return nil
}
