package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/plugingen/descriptor"
	"github.com/teranos/plugingen/element"
)

// named builds a descriptor with the given display name under a shared owner.
func named(name string) descriptor.Descriptor {
	pkg := element.NewPackage("github.com/teranos/graphkit/ir")
	anchor := element.NewMethod(name, element.NewType("Vector", pkg))
	return descriptor.NewSubstitution(name, anchor, "github.com/teranos/graphkit/ir.ValueNode", 0)
}

func names(ds []descriptor.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name()
	}
	return out
}

func TestDisambiguate(t *testing.T) {
	t.Run("three-way collision gets strictly increasing suffixes", func(t *testing.T) {
		ds := []descriptor.Descriptor{
			named("foo"), named("bar"), named("foo"), named("foo"), named("baz"),
		}
		Disambiguate(ds)

		// Insertion order is preserved; only the colliding entries rename.
		require.Equal(t, []string{"foo__0", "bar", "foo__1", "foo__2", "baz"}, names(ds))
	})

	t.Run("counter is shared across collision groups", func(t *testing.T) {
		ds := []descriptor.Descriptor{
			named("a"), named("a"), named("b"), named("b"),
		}
		Disambiguate(ds)

		require.Equal(t, []string{"a__0", "a__1", "b__2", "b__3"}, names(ds))
	})

	t.Run("unique names are never touched", func(t *testing.T) {
		ds := []descriptor.Descriptor{named("x"), named("y"), named("z")}
		Disambiguate(ds)

		require.Equal(t, []string{"x", "y", "z"}, names(ds))
	})

	t.Run("single descriptor is a no-op", func(t *testing.T) {
		ds := []descriptor.Descriptor{named("only")}
		Disambiguate(ds)

		require.Equal(t, []string{"only"}, names(ds))
	})

	t.Run("empty group is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { Disambiguate(nil) })
	})

	t.Run("no descriptor is renamed twice", func(t *testing.T) {
		ds := []descriptor.Descriptor{named("dup"), named("dup"), named("dup")}
		Disambiguate(ds)

		for _, n := range names(ds) {
			assert.NotContains(t, n[len("dup__0"):], NameCollisionMarker)
		}
	})
}
