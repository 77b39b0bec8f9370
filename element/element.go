// Package element models the enclosing-declaration chain of a scanned
// program: packages, type declarations, and the methods declared on them.
//
// The generator only needs enough of the declaration tree to answer one
// question per descriptor: which top-level type hosts the generated
// registration code. The front-end (scan package or any other producer)
// builds these chains; the generator walks them.
package element

// Kind classifies an element within the declaration tree.
type Kind int

const (
	// KindPackage is a package-level scope. It terminates the owner walk.
	KindPackage Kind = iota

	// KindType is a named type declaration, possibly nested inside another
	// type's scope.
	KindType

	// KindMethod is a method or function declaration.
	KindMethod
)

// Element is one node in the enclosing-declaration chain.
type Element struct {
	// Kind says what this element declares.
	Kind Kind

	// Name is the simple name of the declaration. For packages it is the
	// full import path (e.g. "github.com/teranos/graphkit/ir/amd64").
	Name string

	// Enclosing points at the scope this element is declared in; nil only
	// for packages.
	Enclosing *Element
}

// NewPackage returns a package element for the given import path.
func NewPackage(path string) *Element {
	return &Element{Kind: KindPackage, Name: path}
}

// NewType returns a type element declared in the given enclosing scope.
func NewType(name string, enclosing *Element) *Element {
	return &Element{Kind: KindType, Name: name, Enclosing: enclosing}
}

// NewMethod returns a method element declared on the given scope.
func NewMethod(name string, enclosing *Element) *Element {
	return &Element{Kind: KindMethod, Name: name, Enclosing: enclosing}
}

// TopLevel walks the enclosing chain of an anchor and returns the last
// declaration below package level: the top-level declaration that will host
// generated code for the anchor.
//
// A well-formed anchor always has a package at the root of its chain, so the
// walk cannot fail; an anchor that is itself top-level is its own result.
func TopLevel(anchor *Element) *Element {
	prev := anchor
	enclosing := anchor.Enclosing
	for enclosing != nil && enclosing.Kind != KindPackage {
		prev = enclosing
		enclosing = enclosing.Enclosing
	}
	return prev
}

// Package returns the package element at the root of the chain, or nil if
// the chain is not rooted in a package.
func Package(e *Element) *Element {
	for e != nil && e.Kind != KindPackage {
		e = e.Enclosing
	}
	return e
}

// PackagePath returns the import path of the package enclosing e, or the
// empty string if the chain is not rooted in a package.
func PackagePath(e *Element) string {
	if pkg := Package(e); pkg != nil {
		return pkg.Name
	}
	return ""
}
