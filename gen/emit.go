package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/teranos/plugingen/descriptor"
	"github.com/teranos/plugingen/element"
	"github.com/teranos/plugingen/errors"
	"github.com/teranos/plugingen/logger"
)

// factoryPrefix is prepended to the owner's simple name to form the
// generated factory type name.
const factoryPrefix = "PluginFactory_"

// header lines written at the top of every generated module.
var header = []string{
	"// Code generated by plugingen. DO NOT EDIT.",
	"// Generators: github.com/teranos/plugingen/scan, github.com/teranos/plugingen/gen",
}

// emit renders one owner's registration module, writes it to a fresh
// artifact, and registers the module with the provider sink.
func (g *Generator) emit(owner *element.Element, group []descriptor.Descriptor) error {
	pkgPath := element.PackagePath(owner)
	factoryName := factoryPrefix + owner.Name
	qualifiedName := pkgPath + "." + factoryName
	arch, hasArch := CanonicalArchitecture(pkgPath)

	artifact, err := g.artifacts.Create(qualifiedName, owner)
	if err != nil {
		return errors.Wrapf(err, "create artifact for %s", qualifiedName)
	}

	var b strings.Builder
	for _, line := range header {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "package %s\n\n", packageName(pkgPath))
	writeImports(&b, ComputeImports(group, pkgPath))
	for _, d := range group {
		d.Render(&b)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "// %s registers the invocation plugins generated for %s.\n", factoryName, owner.Name)
	fmt.Fprintf(&b, "type %s struct{}\n\n", factoryName)
	if hasArch {
		fmt.Fprintf(&b, "// Architecture restricts this factory to one code-generation back end.\n")
		fmt.Fprintf(&b, "func (%s) Architecture() string {\n", factoryName)
		fmt.Fprintf(&b, "\treturn %q\n", arch)
		fmt.Fprintf(&b, "}\n\n")
	}
	fmt.Fprintf(&b, "func (f %s) RegisterPlugins(plugins *graphbuilder.InvocationPlugins, injection graphbuilder.InjectionProvider) {\n", factoryName)
	for _, d := range group {
		d.RegisterStatement(&b)
	}
	b.WriteString("}\n")

	if werr := writeAndClose(artifact, b.String()); werr != nil {
		return errors.Wrapf(werr, "write artifact for %s", qualifiedName)
	}

	if perr := g.providers.RegisterProvider(qualifiedName, FactoryContract, owner); perr != nil {
		return errors.Wrapf(perr, "register provider for %s", qualifiedName)
	}

	logger.Logger.Debugw("generated plugin factory",
		"factory", qualifiedName,
		"plugins", len(group),
		"architecture", arch)
	return nil
}

// writeAndClose writes content to the artifact and releases it, reporting
// the close error if the write itself succeeded.
func writeAndClose(artifact io.WriteCloser, content string) (err error) {
	defer func() {
		if cerr := artifact.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.WriteString(artifact, content)
	return err
}

// writeImports renders the import block for the given dependency symbols,
// one unique package path per line.
func writeImports(b *strings.Builder, symbols []string) {
	paths := importPaths(symbols)
	if len(paths) == 0 {
		return
	}
	b.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(b, "\t%q\n", p)
	}
	b.WriteString(")\n\n")
}

// packageName returns the simple package name for an import path.
func packageName(pkgPath string) string {
	if i := strings.LastIndex(pkgPath, "/"); i >= 0 {
		return pkgPath[i+1:]
	}
	return pkgPath
}
