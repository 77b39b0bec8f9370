package gen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/plugingen/descriptor"
	"github.com/teranos/plugingen/element"
)

func subWithNode(name, pkgPath, node string, extra ...string) *descriptor.Substitution {
	pkg := element.NewPackage(pkgPath)
	anchor := element.NewMethod(name, element.NewType("Vector", pkg))
	return descriptor.NewSubstitution(name, anchor, node, 1, extra...)
}

func TestComputeImports_BaselineOnly(t *testing.T) {
	got := ComputeImports(nil, "example.com/app")

	want := []string{
		GraphBuilderPackage + ".Context",
		GraphBuilderPackage + ".GeneratedPluginFactory",
		GraphBuilderPackage + ".InjectionProvider",
		GraphBuilderPackage + ".InvocationPlugin",
		GraphBuilderPackage + ".InvocationPlugins",
		IRPackage + ".ValueNode",
		MetaPackage + ".ResolvedMethod",
	}
	require.Equal(t, want, got)
	assert.True(t, sort.StringsAreSorted(got))
}

func TestComputeImports_DescriptorContributions(t *testing.T) {
	d := subWithNode("Abs", "example.com/app", IRPackage+".AbsNode",
		MetaPackage+".ConstantReflection")

	got := ComputeImports([]descriptor.Descriptor{d}, "example.com/app")

	assert.Contains(t, got, GraphBuilderPackage+".GeneratedInvocationPlugin")
	assert.Contains(t, got, IRPackage+".AbsNode")
	assert.Contains(t, got, MetaPackage+".ConstantReflection")
	assert.True(t, sort.StringsAreSorted(got))
}

func TestComputeImports_ReplacementSelection(t *testing.T) {
	t.Run("plain replacement", func(t *testing.T) {
		d := subWithNode("Div", "example.com/app", IRPackage+".DivNode")
		d.SetReplacement(false)

		got := ComputeImports([]descriptor.Descriptor{d}, "example.com/app")

		assert.Contains(t, got, DiagPackage+".ExcludeFromCoverage")
		assert.Contains(t, got, IRPackage+".PluginReplacementNode")
		assert.NotContains(t, got, IRPackage+".PluginReplacementWithExceptionNode")
	})

	t.Run("exception-capable replacement", func(t *testing.T) {
		d := subWithNode("Div", "example.com/app", IRPackage+".DivNode")
		d.SetReplacement(true)

		got := ComputeImports([]descriptor.Descriptor{d}, "example.com/app")

		assert.Contains(t, got, IRPackage+".PluginReplacementWithExceptionNode")
		assert.NotContains(t, got, IRPackage+".PluginReplacementNode")
	})
}

func TestComputeImports_SameNamespaceElision(t *testing.T) {
	t.Run("top-level symbol of the owning package is elided", func(t *testing.T) {
		got := ComputeImports(nil, IRPackage)

		assert.NotContains(t, got, IRPackage+".ValueNode")
		assert.Contains(t, got, MetaPackage+".ResolvedMethod")
	})

	t.Run("owning package's graphbuilder symbols are all elided", func(t *testing.T) {
		got := ComputeImports(nil, GraphBuilderPackage)

		want := []string{
			IRPackage + ".ValueNode",
			MetaPackage + ".ResolvedMethod",
		}
		require.Equal(t, want, got)
	})

	t.Run("nested symbol in the owning package is kept", func(t *testing.T) {
		d := subWithNode("Abs", IRPackage, IRPackage+".AbsNode",
			IRPackage+".Vector.Builder")

		got := ComputeImports([]descriptor.Descriptor{d}, IRPackage)

		assert.Contains(t, got, IRPackage+".Vector.Builder")
		assert.NotContains(t, got, IRPackage+".AbsNode")
	})
}

func TestComputeImports_Deduplicates(t *testing.T) {
	a := subWithNode("Abs", "example.com/app", IRPackage+".AbsNode")
	b := subWithNode("Abs2", "example.com/app", IRPackage+".AbsNode")

	got := ComputeImports([]descriptor.Descriptor{a, b}, "example.com/app")

	seen := make(map[string]int)
	for _, sym := range got {
		seen[sym]++
	}
	for sym, n := range seen {
		assert.Equal(t, 1, n, "duplicate import %s", sym)
	}
}

func TestImportPaths(t *testing.T) {
	symbols := []string{
		GraphBuilderPackage + ".Context",
		GraphBuilderPackage + ".InvocationPlugins",
		IRPackage + ".ValueNode",
	}

	require.Equal(t, []string{GraphBuilderPackage, IRPackage}, importPaths(symbols))
}
