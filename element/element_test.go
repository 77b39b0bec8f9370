package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevel(t *testing.T) {
	pkg := NewPackage("github.com/teranos/graphkit/ir")

	t.Run("method on top-level type", func(t *testing.T) {
		vector := NewType("Vector", pkg)
		abs := NewMethod("Abs", vector)
		assert.Same(t, vector, TopLevel(abs))
	})

	t.Run("method on nested type resolves to the top-level type", func(t *testing.T) {
		vector := NewType("Vector", pkg)
		iterator := NewType("iterator", vector)
		next := NewMethod("Next", iterator)
		assert.Same(t, vector, TopLevel(next))
	})

	t.Run("top-level anchor is its own owner", func(t *testing.T) {
		matrix := NewType("Matrix", pkg)
		assert.Same(t, matrix, TopLevel(matrix))
	})
}

func TestPackagePath(t *testing.T) {
	pkg := NewPackage("github.com/teranos/graphkit/ir/amd64")
	vector := NewType("Vector", pkg)
	abs := NewMethod("Abs", vector)

	require.Equal(t, "github.com/teranos/graphkit/ir/amd64", PackagePath(abs))
	require.Equal(t, "github.com/teranos/graphkit/ir/amd64", PackagePath(pkg))
}

func TestPackagePath_UnrootedChain(t *testing.T) {
	orphan := NewType("Orphan", nil)
	assert.Nil(t, Package(orphan))
	assert.Equal(t, "", PackagePath(orphan))
}
