package descriptor

import (
	"fmt"
	"strings"

	"github.com/teranos/plugingen/element"
)

// Fold is a plugin that evaluates an intercepted call at graph-building time
// when all of its arguments are compile-time constants. The actual evaluation
// is delegated to the injection provider, so the generated block carries no
// knowledge of the folded method's semantics.
type Fold struct {
	Base

	// ArgCount is how many stack arguments the intercepted call consumes.
	ArgCount int

	extra []string
}

// NewFold returns a constant-folding plugin descriptor for the given anchor.
func NewFold(name string, anchor *element.Element, argCount int, extra ...string) *Fold {
	return &Fold{
		Base:     NewBase(name, anchor),
		ArgCount: argCount,
		extra:    extra,
	}
}

// Contract implements Descriptor.
func (f *Fold) Contract() string { return "GeneratedFoldPlugin" }

// NeedsReplacement implements Descriptor. Fold plugins bail out instead of
// deferring, so they never carry a replacement node.
func (f *Fold) NeedsReplacement() bool { return false }

// WithExceptionReplacement implements Descriptor.
func (f *Fold) WithExceptionReplacement() bool { return false }

// ExtraImports implements Descriptor.
func (f *Fold) ExtraImports(imports map[string]bool) {
	for _, sym := range f.extra {
		imports[sym] = true
	}
}

// Render implements Descriptor.
func (f *Fold) Render(b *strings.Builder) {
	name := f.Name()

	fmt.Fprintf(b, "// %s folds constant calls to %s.%s at graph-building time.\n",
		name, anchorOwnerName(f.Anchor()), f.Anchor().Name)
	fmt.Fprintf(b, "type %s struct {\n", name)
	fmt.Fprintf(b, "\tgraphbuilder.%s\n", f.Contract())
	fmt.Fprintf(b, "}\n")
	fmt.Fprintf(b, "\n")
	fmt.Fprintf(b, "func (p *%s) Execute(b *graphbuilder.Context, targetMethod meta.ResolvedMethod, args []ir.ValueNode) bool {\n", name)
	fmt.Fprintf(b, "\tfor _, arg := range args {\n")
	fmt.Fprintf(b, "\t\tif !arg.IsConstant() {\n")
	fmt.Fprintf(b, "\t\t\treturn false\n")
	fmt.Fprintf(b, "\t\t}\n")
	fmt.Fprintf(b, "\t}\n")
	fmt.Fprintf(b, "\tresult := b.Injection().Fold(targetMethod, args)\n")
	fmt.Fprintf(b, "\tb.Push(result)\n")
	fmt.Fprintf(b, "\treturn true\n")
	fmt.Fprintf(b, "}\n")
}

// RegisterStatement implements Descriptor.
func (f *Fold) RegisterStatement(b *strings.Builder) {
	fmt.Fprintf(b, "\tplugins.Register(&%s{}, %q, %q, %d)\n",
		f.Name(), anchorOwnerName(f.Anchor()), f.Anchor().Name, f.ArgCount)
}
