// Package gen turns collected plugin descriptors into generated registration
// modules: one Go source file per top-level declaring type, plus a provider
// entry for service discovery.
//
// The pipeline per owner is linear: group, disambiguate colliding names,
// compute the import set, render, register the provider. Owners are fully
// independent of each other; a failure to acquire or write one owner's
// artifact is reported and the remaining owners still generate.
package gen

import (
	"github.com/teranos/plugingen/descriptor"
	"github.com/teranos/plugingen/element"
	"github.com/teranos/plugingen/errors"
)

// Generator collects plugin descriptors for one compilation pass and emits a
// registration module per top-level declaring type.
//
// Generator is not safe for concurrent use; the pass is single-threaded and
// output determinism depends on registration order.
type Generator struct {
	owners []*element.Element
	index  map[ownerKey]int
	groups [][]descriptor.Descriptor

	artifacts ArtifactSink
	providers ProviderSink
	diags     DiagnosticSink
}

// ownerKey identifies a top-level declaration. Distinct element chains for
// the same declaration (e.g. built per source file by the scanner) group
// together.
type ownerKey struct {
	pkg  string
	name string
}

// New returns a Generator writing through the given sinks.
func New(artifacts ArtifactSink, providers ProviderSink, diags DiagnosticSink) *Generator {
	return &Generator{
		index:     make(map[ownerKey]int),
		artifacts: artifacts,
		providers: providers,
		diags:     diags,
	}
}

// Register adds one descriptor, grouped under its anchor's top-level
// declaration. Registration order is preserved end to end: owners generate
// in first-registration order, and blocks within a module keep group order.
func (g *Generator) Register(d descriptor.Descriptor) {
	owner := element.TopLevel(d.Anchor())
	key := ownerKey{pkg: element.PackagePath(owner), name: owner.Name}
	i, ok := g.index[key]
	if !ok {
		i = len(g.owners)
		g.index[key] = i
		g.owners = append(g.owners, owner)
		g.groups = append(g.groups, nil)
	}
	g.groups[i] = append(g.groups[i], d)
}

// Owners returns the number of top-level declarations holding descriptors.
func (g *Generator) Owners() int { return len(g.owners) }

// GenerateAll generates one module per owner. Each owner's failure is
// reported through the diagnostic sink and does not stop the others; the
// returned error is non-nil iff at least one owner failed, so callers can
// fail the enclosing build.
func (g *Generator) GenerateAll() error {
	failed := 0
	for i, owner := range g.owners {
		group := g.groups[i]
		Disambiguate(group)
		if err := g.emit(owner, group); err != nil {
			g.diags.ReportError(err.Error())
			failed++
		}
	}
	if failed > 0 {
		return errors.Newf("generation failed for %d of %d plugin factories", failed, len(g.owners))
	}
	return nil
}
