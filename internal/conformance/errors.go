package conformance

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a conformance failure
type Kind string

// Failure kinds raised while a class is being defined
const (
	KindUnimplementedOnParent Kind = "UNIMPLEMENTED_ON_PARENT"
	KindNotOverridden         Kind = "NOT_OVERRIDDEN"
	KindArityMismatch         Kind = "ARITY_MISMATCH"
	KindSignatureMismatch     Kind = "SIGNATURE_MISMATCH"
	KindMissingAnnotation     Kind = "MISSING_ANNOTATION"
	KindInconsistentHierarchy Kind = "INCONSISTENT_HIERARCHY"
	KindDuplicateMethod       Kind = "DUPLICATE_METHOD"
)

// Sentinels matched by errors.Is against any *Error of the same kind
var (
	ErrUnimplementedOnParent = errors.New(string(KindUnimplementedOnParent))
	ErrNotOverridden         = errors.New(string(KindNotOverridden))
	ErrArityMismatch         = errors.New(string(KindArityMismatch))
	ErrSignatureMismatch     = errors.New(string(KindSignatureMismatch))
	ErrMissingAnnotation     = errors.New(string(KindMissingAnnotation))
	ErrInconsistentHierarchy = errors.New(string(KindInconsistentHierarchy))
	ErrDuplicateMethod       = errors.New(string(KindDuplicateMethod))
)

var sentinels = map[Kind]error{
	KindUnimplementedOnParent: ErrUnimplementedOnParent,
	KindNotOverridden:         ErrNotOverridden,
	KindArityMismatch:         ErrArityMismatch,
	KindSignatureMismatch:     ErrSignatureMismatch,
	KindMissingAnnotation:     ErrMissingAnnotation,
	KindInconsistentHierarchy: ErrInconsistentHierarchy,
	KindDuplicateMethod:       ErrDuplicateMethod,
}

// Error describes the first violation found while defining a class
type Error struct {
	Kind     Kind   `json:"kind"`
	Class    string `json:"class,omitempty"`
	Parent   string `json:"parent,omitempty"`
	Method   string `json:"method,omitempty"`
	Param    string `json:"param,omitempty"`
	Expected string `json:"expected,omitempty"`
	Got      string `json:"got,omitempty"`
	Message  string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Is matches the sentinel of the same kind
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

func newUnimplementedOnParent(cls, parent, method string) *Error {
	return &Error{
		Kind:    KindUnimplementedOnParent,
		Class:   cls,
		Parent:  parent,
		Method:  method,
		Message: fmt.Sprintf("Method %s must be implemented in class '%s'", method, parent),
	}
}

func newNotOverridden(cls, parent, method string) *Error {
	return &Error{
		Kind:    KindNotOverridden,
		Class:   cls,
		Parent:  parent,
		Method:  method,
		Message: fmt.Sprintf("Subclass '%s' must override the method '%s' from the parent class '%s'.", cls, method, parent),
	}
}

func newArityMismatch(method string, expected, got []Param) *Error {
	exp, act := paramNames(expected), paramNames(got)
	return &Error{
		Kind:     KindArityMismatch,
		Method:   method,
		Expected: exp,
		Got:      act,
		Message:  fmt.Sprintf("Method parameters mismatch for %s: expected [%s], got [%s]", method, exp, act),
	}
}

func newNameMismatch(expected, got string) *Error {
	return &Error{
		Kind:     KindSignatureMismatch,
		Param:    expected,
		Expected: expected,
		Got:      got,
		Message:  fmt.Sprintf("Parameter name mismatch: expected %s, got %s", expected, got),
	}
}

func newTypeMismatch(param string, expected, got TypeRef) *Error {
	return &Error{
		Kind:     KindSignatureMismatch,
		Param:    param,
		Expected: expected.String(),
		Got:      got.String(),
		Message:  fmt.Sprintf("Signature mismatch for parameter %s: expected %s, got %s", param, expected, got),
	}
}

func newMissingAnnotation(cls, method, param string) *Error {
	return &Error{
		Kind:    KindMissingAnnotation,
		Class:   cls,
		Method:  method,
		Param:   param,
		Message: fmt.Sprintf("Parameter %s of method %s in class '%s' has no type annotation", param, method, cls),
	}
}

func paramNames(params []Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
