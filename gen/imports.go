package gen

import (
	"regexp"
	"sort"
	"strings"

	"github.com/teranos/plugingen/descriptor"
)

// Well-known packages of the host compiler framework. Generated code names
// symbols from these; plugingen itself never links against them.
const (
	// GraphBuilderPackage holds the graph-builder plugin contracts.
	GraphBuilderPackage = "github.com/teranos/graphkit/graphbuilder"

	// IRPackage holds the host's IR node types.
	IRPackage = "github.com/teranos/graphkit/ir"

	// MetaPackage holds resolved-method metadata types.
	MetaPackage = "github.com/teranos/graphkit/meta"

	// DiagPackage holds diagnostics helpers referenced by replacement
	// fallback paths.
	DiagPackage = "github.com/teranos/graphkit/diag"
)

// FactoryContract is the well-known service contract every generated factory
// is registered under, so downstream tooling can enumerate factories without
// scanning compiled artifacts.
const FactoryContract = GraphBuilderPackage + ".GeneratedPluginFactory"

// baselineImports are required by every generated module regardless of its
// descriptors.
var baselineImports = []string{
	MetaPackage + ".ResolvedMethod",
	IRPackage + ".ValueNode",
	GraphBuilderPackage + ".Context",
	GraphBuilderPackage + ".InvocationPlugin",
	GraphBuilderPackage + ".InvocationPlugins",
	GraphBuilderPackage + ".GeneratedPluginFactory",
	GraphBuilderPackage + ".InjectionProvider",
}

// ComputeImports returns the sorted, duplicate-free list of fully qualified
// symbols a module generated from the given descriptors must import.
//
// Symbols naming a top-level declaration of the owning package itself are
// elided: they are visible without an explicit import. An empty descriptor
// list yields exactly the baseline set.
func ComputeImports(descriptors []descriptor.Descriptor, owningPkg string) []string {
	symbols := make(map[string]bool)
	for _, sym := range baselineImports {
		symbols[sym] = true
	}

	for _, d := range descriptors {
		symbols[GraphBuilderPackage+"."+d.Contract()] = true
		d.ExtraImports(symbols)
		if d.NeedsReplacement() {
			symbols[DiagPackage+".ExcludeFromCoverage"] = true
			if d.WithExceptionReplacement() {
				symbols[IRPackage+".PluginReplacementWithExceptionNode"] = true
			} else {
				symbols[IRPackage+".PluginReplacementNode"] = true
			}
		}
	}

	out := make([]string, 0, len(symbols))
	for sym := range symbols {
		if elide(sym, owningPkg) {
			continue
		}
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// symbolBoundary locates the package/symbol boundary in a fully qualified
// name: the first dot followed by an uppercase letter.
var symbolBoundary = regexp.MustCompile(`\.([A-Z])`)

// elide reports whether a symbol needs no explicit import because it names a
// top-level declaration of the importing package itself. A nested name in
// the same package (further dot-qualification after the boundary) is kept.
func elide(symbol, owningPkg string) bool {
	loc := symbolBoundary.FindStringIndex(symbol)
	if loc == nil {
		return false
	}
	pkg := symbol[:loc[0]]
	name := symbol[loc[0]+1:]
	return pkg == owningPkg && !strings.Contains(name, ".")
}

// importPaths reduces qualified symbols to the unique, sorted set of package
// paths the generated file declares in its import block.
func importPaths(symbols []string) []string {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		loc := symbolBoundary.FindStringIndex(sym)
		if loc == nil {
			continue
		}
		pkg := sym[:loc[0]]
		if !seen[pkg] {
			seen[pkg] = true
			paths = append(paths, pkg)
		}
	}
	sort.Strings(paths)
	return paths
}
