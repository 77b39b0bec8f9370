// Package descriptor defines the contract between the plugin front-end and
// the generator core.
//
// A Descriptor is one discovered plugin declaration: it knows which method it
// intercepts, what its generated plugin type is called, and how to render its
// own declaration block and registration statement. The generator core never
// inspects which concrete variant it is holding; it only groups, renames, and
// invokes the capabilities below.
package descriptor

import (
	"strings"

	"github.com/teranos/plugingen/element"
)

// Descriptor is one plugin declaration destined for generated registration
// code.
type Descriptor interface {
	// Anchor is the intercepted method. It is used only to find the
	// top-level declaration that hosts the generated code.
	Anchor() *element.Element

	// Name returns the current display name of the generated plugin type.
	Name() string

	// SetName rewrites the display name. Called at most once per generation
	// run, by collision disambiguation.
	SetName(name string)

	// Contract returns the simple name of the base registration contract the
	// generated plugin embeds (a type in the host's graphbuilder package).
	Contract() string

	// NeedsReplacement reports whether the generated plugin carries a
	// replacement-node fallback for call sites it cannot intrinsify.
	NeedsReplacement() bool

	// WithExceptionReplacement selects the exception-capable replacement
	// node. Meaningful only when NeedsReplacement is true.
	WithExceptionReplacement() bool

	// ExtraImports adds the variant-specific dependencies of the rendered
	// block to the given set, keyed by fully qualified symbol name.
	ExtraImports(imports map[string]bool)

	// Render writes the plugin's standalone declaration block.
	Render(b *strings.Builder)

	// RegisterStatement writes the single statement that registers the
	// plugin inside the generated factory's dispatch body.
	RegisterStatement(b *strings.Builder)
}

// Base carries the state every descriptor variant shares. Variants embed it
// and implement Render, RegisterStatement, and ExtraImports themselves.
type Base struct {
	name   string
	anchor *element.Element
}

// NewBase returns descriptor state for the given plugin name and anchor.
func NewBase(name string, anchor *element.Element) Base {
	return Base{name: name, anchor: anchor}
}

// Anchor returns the intercepted method.
func (b *Base) Anchor() *element.Element { return b.anchor }

// Name returns the current display name.
func (b *Base) Name() string { return b.name }

// SetName rewrites the display name.
func (b *Base) SetName(name string) { b.name = name }

// symbolRef converts a fully qualified symbol such as
// "github.com/teranos/graphkit/ir.AbsNode" into the reference form used
// inside generated code, "ir.AbsNode".
func symbolRef(qualified string) string {
	dot := strings.LastIndex(qualified, ".")
	if dot < 0 {
		return qualified
	}
	pkg := qualified[:dot]
	if slash := strings.LastIndex(pkg, "/"); slash >= 0 {
		pkg = pkg[slash+1:]
	}
	return pkg + "." + qualified[dot+1:]
}

// anchorOwnerName returns the simple name of the anchor's top-level
// declaration, used in registration statements.
func anchorOwnerName(anchor *element.Element) string {
	return element.TopLevel(anchor).Name
}
