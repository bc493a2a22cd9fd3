// Package conformance verifies that implementation classes honour the
// interface they declare to implement.
//
// A class is described explicitly with Define: a name, its bases and the
// methods it declares, each method carrying its ordered parameter annotations.
// Classes that list ProtocolCheck among their bases are verified against their
// immediate parent while they are being defined, and definition fails on the
// first violation.
package conformance

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ReturnSlot is the parameter name under which a method's return type is kept.
const ReturnSlot = "return"

// TypeRef is a declared type annotation: either a concrete type or a type
// variable bound to a concrete type. The zero value means "not annotated".
type TypeRef struct {
	name  string
	rtype reflect.Type
	bound *TypeRef
}

// TypeOf returns the annotation for the Go type of T.
func TypeOf[T any]() TypeRef {
	return Type(reflect.TypeOf((*T)(nil)).Elem())
}

// Type wraps a reflect.Type. Its simple name drops package qualifiers at
// every level, so *domain.Query is named *Query and []pkg.Item is []Item.
func Type(t reflect.Type) TypeRef {
	if t == nil {
		return TypeRef{}
	}
	return TypeRef{name: simpleName(t), rtype: t}
}

func simpleName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + simpleName(t.Elem())
	case reflect.Slice:
		return "[]" + simpleName(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), simpleName(t.Elem()))
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", simpleName(t.Key()), simpleName(t.Elem()))
	default:
		return t.String()
	}
}

// Named returns an annotation known only by name.
func Named(name string) TypeRef {
	return TypeRef{name: name}
}

// TypeVar returns a type variable bound to the given concrete type.
func TypeVar(name string, bound TypeRef) TypeRef {
	b := bound
	return TypeRef{name: name, bound: &b}
}

// Name returns the simple name of the annotation.
func (t TypeRef) Name() string {
	return t.name
}

// IsZero reports whether the annotation is missing.
func (t TypeRef) IsZero() bool {
	return t.name == "" && t.rtype == nil && t.bound == nil
}

// IsTypeVar reports whether the annotation is a bound type variable.
func (t TypeRef) IsTypeVar() bool {
	return t.bound != nil
}

// Bound returns the concrete type a type variable is bound to.
func (t TypeRef) Bound() (TypeRef, bool) {
	if t.bound == nil {
		return TypeRef{}, false
	}
	return *t.bound, true
}

// Identical reports whether two annotations denote the same type. Two
// reflected types compare by identity; when either side is known only by
// name, the names are compared.
func (t TypeRef) Identical(other TypeRef) bool {
	if t.rtype != nil && other.rtype != nil {
		return t.rtype == other.rtype
	}
	if t.bound != nil || other.bound != nil {
		if t.bound == nil || other.bound == nil {
			return false
		}
		return t.name == other.name && t.bound.Identical(*other.bound)
	}
	return t.name == other.name
}

func (t TypeRef) String() string {
	switch {
	case t.IsZero():
		return "<unannotated>"
	case t.bound != nil:
		return fmt.Sprintf("~%s[bound=%s]", t.name, t.bound.name)
	default:
		return t.name
	}
}

// Param is one (name, type) pair of a method signature.
type Param struct {
	Name string
	Type TypeRef
}

// P is shorthand for a Param.
func P(name string, t TypeRef) Param {
	return Param{Name: name, Type: t}
}

// Returns is shorthand for the return slot.
func Returns(t TypeRef) Param {
	return Param{Name: ReturnSlot, Type: t}
}

// Method is a declared method. A *Method is the method object: two classes
// share a method only if they resolve a name to the same pointer.
type Method struct {
	Name   string
	Params []Param
}

// NewMethod declares a method with explicit parameters, return slot last.
func NewMethod(name string, params ...Param) *Method {
	return &Method{Name: name, Params: params}
}

// Func declares a method whose parameter types come from fn, which must be a
// func value taking exactly one input per name. Results map onto the return
// slot; several results are annotated as a tuple.
func Func(name string, fn any, paramNames ...string) *Method {
	return fromFunc(name, fn, 0, paramNames)
}

// MethodOf is like Func for a method expression such as (*T).M or I.M: the
// first input is the receiver and takes no name.
func MethodOf(name string, methodExpr any, paramNames ...string) *Method {
	return fromFunc(name, methodExpr, 1, paramNames)
}

func fromFunc(name string, fn any, receivers int, paramNames []string) *Method {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("conformance: %s: expected a func, got %T", name, fn))
	}
	if ft.NumIn() != len(paramNames)+receivers {
		panic(fmt.Sprintf("conformance: %s: %d parameter names for %d inputs", name, len(paramNames), ft.NumIn()-receivers))
	}

	params := make([]Param, 0, len(paramNames)+1)
	for i, pn := range paramNames {
		params = append(params, P(pn, Type(ft.In(i+receivers))))
	}

	switch ft.NumOut() {
	case 0:
	case 1:
		params = append(params, Returns(Type(ft.Out(0))))
	default:
		outs := make([]string, ft.NumOut())
		for i := range outs {
			outs[i] = simpleName(ft.Out(i))
		}
		params = append(params, Returns(Named("("+strings.Join(outs, ", ")+")")))
	}

	return &Method{Name: name, Params: params}
}

// Hook runs when a subclass of the class carrying it is defined. next
// continues with the remaining hooks further up the resolution order.
type Hook func(cls *Class, next func() error) error

// Class is an explicitly described class.
type Class struct {
	name    string
	bases   []*Class
	methods map[string]*Method
	order   []string
	hook    Hook
	mro     []*Class
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Bases returns the declared bases.
func (c *Class) Bases() []*Class {
	return append([]*Class(nil), c.bases...)
}

// MRO returns the method resolution order, starting with c.
func (c *Class) MRO() []*Class {
	return append([]*Class(nil), c.mro...)
}

// OwnMethods returns the methods declared directly on c, in declaration order.
func (c *Class) OwnMethods() []*Method {
	out := make([]*Method, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.methods[name])
	}
	return out
}

// Lookup resolves a method name through the resolution order.
func (c *Class) Lookup(name string) (*Method, bool) {
	for _, k := range c.mro {
		if m, ok := k.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Members returns every method name reachable from c, sorted.
func (c *Class) Members() []string {
	seen := make(map[string]bool)
	var names []string
	for _, k := range c.mro {
		for _, name := range k.order {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// IsSubclass reports whether other appears in c's resolution order.
func (c *Class) IsSubclass(other *Class) bool {
	for _, k := range c.mro {
		if k == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string {
	return c.name
}

func isDunder(name string) bool {
	return strings.HasPrefix(name, "__")
}
