package descriptor

import (
	"fmt"
	"strings"

	"github.com/teranos/plugingen/element"
)

// Substitution is a plugin that replaces an intercepted call with direct
// construction of an IR node. This is the common case: the intercepted
// method is a builder-API stand-in for a node the compiler knows natively.
type Substitution struct {
	Base

	// NodeType is the fully qualified symbol of the IR node the plugin
	// builds, e.g. "github.com/teranos/graphkit/ir.AbsNode".
	NodeType string

	// ArgCount is how many stack arguments the intercepted call consumes.
	ArgCount int

	needsReplacement bool
	withException    bool
	extra            []string
}

// NewSubstitution returns a substitution plugin descriptor for the given
// anchor. The extra symbols are added verbatim to the generated module's
// dependency set.
func NewSubstitution(name string, anchor *element.Element, nodeType string, argCount int, extra ...string) *Substitution {
	return &Substitution{
		Base:     NewBase(name, anchor),
		NodeType: nodeType,
		ArgCount: argCount,
		extra:    extra,
	}
}

// SetReplacement marks the plugin as carrying a replacement-node fallback,
// optionally the exception-capable variant.
func (s *Substitution) SetReplacement(withException bool) {
	s.needsReplacement = true
	s.withException = withException
}

// Contract implements Descriptor.
func (s *Substitution) Contract() string { return "GeneratedInvocationPlugin" }

// NeedsReplacement implements Descriptor.
func (s *Substitution) NeedsReplacement() bool { return s.needsReplacement }

// WithExceptionReplacement implements Descriptor.
func (s *Substitution) WithExceptionReplacement() bool { return s.withException }

// ExtraImports implements Descriptor.
func (s *Substitution) ExtraImports(imports map[string]bool) {
	imports[s.NodeType] = true
	for _, sym := range s.extra {
		imports[sym] = true
	}
}

// Render implements Descriptor. The block declares the plugin type and its
// Execute method building the node in place of the intercepted call.
func (s *Substitution) Render(b *strings.Builder) {
	name := s.Name()
	node := symbolRef(s.NodeType)

	fmt.Fprintf(b, "// %s intercepts %s.%s and builds %s in place of the call.\n",
		name, anchorOwnerName(s.Anchor()), s.Anchor().Name, node)
	fmt.Fprintf(b, "type %s struct {\n", name)
	fmt.Fprintf(b, "\tgraphbuilder.%s\n", s.Contract())
	fmt.Fprintf(b, "}\n")
	fmt.Fprintf(b, "\n")
	fmt.Fprintf(b, "func (p *%s) Execute(b *graphbuilder.Context, targetMethod meta.ResolvedMethod, args []ir.ValueNode) bool {\n", name)
	if s.needsReplacement {
		replacement := "PluginReplacementNode"
		if s.withException {
			replacement = "PluginReplacementWithExceptionNode"
		}
		fmt.Fprintf(b, "\tif b.ShouldDefer(p) {\n")
		fmt.Fprintf(b, "\t\tdiag.ExcludeFromCoverage(targetMethod)\n")
		fmt.Fprintf(b, "\t\tb.Append(ir.New%s(targetMethod, args))\n", replacement)
		fmt.Fprintf(b, "\t\treturn true\n")
		fmt.Fprintf(b, "\t}\n")
	}
	fmt.Fprintf(b, "\tnode := %s(%s)\n", constructorRef(s.NodeType), argList(s.ArgCount))
	fmt.Fprintf(b, "\tb.AddPush(node)\n")
	fmt.Fprintf(b, "\treturn true\n")
	fmt.Fprintf(b, "}\n")
}

// RegisterStatement implements Descriptor.
func (s *Substitution) RegisterStatement(b *strings.Builder) {
	fmt.Fprintf(b, "\tplugins.Register(&%s{}, %q, %q, %d)\n",
		s.Name(), anchorOwnerName(s.Anchor()), s.Anchor().Name, s.ArgCount)
}

// constructorRef turns a qualified node symbol into its constructor
// reference: ".../ir.AbsNode" becomes "ir.NewAbsNode".
func constructorRef(qualified string) string {
	ref := symbolRef(qualified)
	if dot := strings.LastIndex(ref, "."); dot >= 0 {
		return ref[:dot+1] + "New" + ref[dot+1:]
	}
	return "New" + ref
}

// argList renders "args[0], args[1], ..." for the given arity.
func argList(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("args[%d]", i)
	}
	return strings.Join(parts, ", ")
}
