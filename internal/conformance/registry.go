package conformance

import (
	"sort"
	"sync"
)

// DefaultRegistry holds the classes created with the package-level Define.
var DefaultRegistry = NewRegistry()

// Registry keeps every class it defined that verifies itself through
// ProtocolCheck.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// ContractReport summarises one verified implementation
type ContractReport struct {
	Class   string   `json:"class"`
	Parent  string   `json:"parent"`
	Methods []string `json:"methods"`
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Define creates a class from its bases and declared methods. The hooks found
// along the new class's resolution order run before Define returns, so a
// class that mixes in ProtocolCheck is either returned fully verified or not
// at all.
func (r *Registry) Define(name string, bases []*Class, methods ...*Method) (*Class, error) {
	return r.define(name, bases, nil, methods)
}

// DefineWithHook is like Define, and the new class's hook runs each time a
// subclass of it is defined. The class itself is not passed to its own hook.
func (r *Registry) DefineWithHook(name string, bases []*Class, hook Hook, methods ...*Method) (*Class, error) {
	return r.define(name, bases, hook, methods)
}

func (r *Registry) define(name string, bases []*Class, hook Hook, methods []*Method) (*Class, error) {
	cls, err := newClass(name, bases, hook, methods)
	if err != nil {
		return nil, err
	}

	if err := runHooks(cls, cls.mro[1:]); err != nil {
		return nil, err
	}

	if cls.IsSubclass(ProtocolCheck) {
		r.mu.Lock()
		r.classes[name] = cls
		r.mu.Unlock()
	}
	return cls, nil
}

// Get returns a verified class by name
func (r *Registry) Get(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cls, ok := r.classes[name]
	return cls, ok
}

// Classes returns the verified classes sorted by name
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	out := make([]*Class, 0, len(r.classes))
	for _, cls := range r.classes {
		out = append(out, cls)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Report lists each verified class with its parent and checked methods
func (r *Registry) Report() []ContractReport {
	classes := r.Classes()
	reports := make([]ContractReport, 0, len(classes))
	for _, cls := range classes {
		rep := ContractReport{Class: cls.name, Methods: []string{}}
		if len(cls.mro) > 1 {
			rep.Parent = cls.mro[1].name
		}
		for _, name := range cls.Members() {
			if !isDunder(name) {
				rep.Methods = append(rep.Methods, name)
			}
		}
		reports = append(reports, rep)
	}
	return reports
}
