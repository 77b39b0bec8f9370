package gen

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/plugingen/element"
	"github.com/teranos/plugingen/errors"
	"github.com/teranos/plugingen/logger"
)

// ArtifactSink hands out writable output artifacts keyed by the fully
// qualified name of a generated module. The owner element is passed through
// so sinks that do incremental-build tracking can associate the artifact
// with the declaration it was generated from.
type ArtifactSink interface {
	Create(qualifiedName string, owner *element.Element) (io.WriteCloser, error)
}

// ProviderSink records generated modules against a service contract so
// downstream tooling can discover every factory implementing the contract.
type ProviderSink interface {
	RegisterProvider(qualifiedName, contract string, owner *element.Element) error
}

// DiagnosticSink receives per-owner generation failures.
type DiagnosticSink interface {
	ReportError(msg string)
}

// DirArtifactSink writes generated modules under Root, mirroring the owning
// package's import path. "pkg/path.PluginFactory_X" becomes
// "Root/pkg/path/pluginfactory_x_gen.go".
type DirArtifactSink struct {
	Root string
}

// Create implements ArtifactSink.
func (s *DirArtifactSink) Create(qualifiedName string, _ *element.Element) (io.WriteCloser, error) {
	pkg, name, ok := splitQualified(qualifiedName)
	if !ok {
		return nil, errors.Newf("artifact name %q has no package qualifier", qualifiedName)
	}
	dir := filepath.Join(s.Root, filepath.FromSlash(pkg))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(errors.ErrArtifactUnavailable, "%s: %v", qualifiedName, err)
	}
	path := filepath.Join(dir, strings.ToLower(name)+"_gen.go")
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArtifactUnavailable, "%s: %v", qualifiedName, err)
	}
	return f, nil
}

// DirProviderSink records providers as one file per generated module under
// Root, named by the module's qualified name with path separators flattened;
// the file content is the contract name. The layout lets tooling enumerate
// all providers of a contract with a single directory listing.
type DirProviderSink struct {
	Root string
}

// RegisterProvider implements ProviderSink.
func (s *DirProviderSink) RegisterProvider(qualifiedName, contract string, _ *element.Element) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return errors.Wrapf(err, "provider dir for %s", qualifiedName)
	}
	entry := strings.ReplaceAll(qualifiedName, "/", ".")
	path := filepath.Join(s.Root, entry)
	if err := os.WriteFile(path, []byte(contract+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, "provider entry for %s", qualifiedName)
	}
	return nil
}

// LogDiagnosticSink reports generation failures through the process logger.
type LogDiagnosticSink struct{}

// ReportError implements DiagnosticSink.
func (LogDiagnosticSink) ReportError(msg string) {
	logger.Logger.Errorw("plugin factory generation failed", "error", msg)
}

// splitQualified splits "pkg/path.Name" at the package/symbol boundary.
func splitQualified(qualifiedName string) (pkg, name string, ok bool) {
	loc := symbolBoundary.FindStringIndex(qualifiedName)
	if loc == nil {
		return "", "", false
	}
	return qualifiedName[:loc[0]], qualifiedName[loc[0]+1:], true
}
