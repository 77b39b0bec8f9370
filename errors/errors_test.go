package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelWrapping(t *testing.T) {
	err := Wrapf(ErrArtifactUnavailable, "create artifact for %s", "pkg.PluginFactory_X")

	require.Error(t, err)
	assert.True(t, Is(err, ErrArtifactUnavailable))
	assert.Contains(t, err.Error(), "pkg.PluginFactory_X")
	assert.Contains(t, err.Error(), "output artifact unavailable")
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrArtifactUnavailable, ErrBadDirective))
	assert.False(t, Is(ErrBadDirective, ErrArtifactUnavailable))
}
