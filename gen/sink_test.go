package gen

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirArtifactSink(t *testing.T) {
	root := t.TempDir()
	sink := &DirArtifactSink{Root: root}

	w, err := sink.Create("example.com/app.PluginFactory_Vector", nil)
	require.NoError(t, err)
	_, err = io.WriteString(w, "package app\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(root, "example.com", "app", "pluginfactory_vector_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package app\n", string(data))
}

func TestDirArtifactSink_RejectsUnqualifiedName(t *testing.T) {
	sink := &DirArtifactSink{Root: t.TempDir()}

	_, err := sink.Create("noqualifier", nil)
	require.Error(t, err)
}

func TestDirProviderSink(t *testing.T) {
	root := t.TempDir()
	sink := &DirProviderSink{Root: root}

	require.NoError(t, sink.RegisterProvider("example.com/app.PluginFactory_Vector", FactoryContract, nil))

	data, err := os.ReadFile(filepath.Join(root, "example.com.app.PluginFactory_Vector"))
	require.NoError(t, err)
	assert.Equal(t, FactoryContract+"\n", string(data))
}
