// Package scan is the plugin front-end: it discovers plugingen directives on
// methods in Go source and turns them into descriptors for the generator.
//
// A directive is a single comment line in a method's doc comment:
//
//	//plugingen:substitution node=github.com/teranos/graphkit/ir.AbsNode args=1
//	//plugingen:fold args=2 name=FoldedLength
//
// Options:
//
//	name=X          display name of the generated plugin (default: method name)
//	node=SYM        IR node symbol a substitution builds (default: ir.<name>Node)
//	args=N          intercepted call arity (default: receiver method's arity)
//	replacement     substitution carries a replacement-node fallback
//	withexception   selects the exception-capable replacement node
//	imports=A,B     extra qualified symbols the rendered block depends on
package scan

import (
	"go/ast"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/plugingen/descriptor"
	"github.com/teranos/plugingen/element"
	"github.com/teranos/plugingen/errors"
	"github.com/teranos/plugingen/gen"
)

const directivePrefix = "//plugingen:"

// Packages loads the given package patterns, scans every file for plugingen
// directives, and registers the resulting descriptors with the generator.
// It returns the number of descriptors registered.
func Packages(g *gen.Generator, patterns ...string) (int, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return 0, errors.Wrap(err, "load packages")
	}

	total := 0
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return total, errors.Newf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		for _, file := range pkg.Syntax {
			ds, err := File(pkg.PkgPath, file)
			if err != nil {
				return total, errors.Wrapf(err, "package %s", pkg.PkgPath)
			}
			for _, d := range ds {
				g.Register(d)
				total++
			}
		}
	}
	return total, nil
}

// File extracts the descriptors declared in one parsed file. Separated from
// package loading so it can run against any *ast.File.
func File(pkgPath string, file *ast.File) ([]descriptor.Descriptor, error) {
	pkgElem := element.NewPackage(pkgPath)

	var out []descriptor.Descriptor
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		for _, c := range fn.Doc.List {
			dir, ok, err := parseDirective(c.Text)
			if err != nil {
				return nil, errors.Wrapf(err, "method %s", fn.Name.Name)
			}
			if !ok {
				continue
			}
			d, err := build(dir, pkgElem, fn)
			if err != nil {
				return nil, errors.Wrapf(err, "method %s", fn.Name.Name)
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// directive is one parsed //plugingen: line.
type directive struct {
	kind          string
	name          string
	node          string
	args          int
	argsSet       bool
	replacement   bool
	withException bool
	imports       []string
}

// displayName matches a legal bare plugin name: no path separators, no
// punctuation that could collide with the collision marker or generated
// identifiers.
var displayName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func parseDirective(text string) (*directive, bool, error) {
	if !strings.HasPrefix(text, directivePrefix) {
		return nil, false, nil
	}
	fields := strings.Fields(strings.TrimPrefix(text, directivePrefix))
	if len(fields) == 0 {
		return nil, false, errors.Wrap(errors.ErrBadDirective, "missing plugin kind")
	}

	dir := &directive{kind: fields[0]}
	if dir.kind != "substitution" && dir.kind != "fold" {
		return nil, false, errors.Wrapf(errors.ErrBadDirective, "unknown plugin kind %q", dir.kind)
	}

	for _, f := range fields[1:] {
		key, value, _ := strings.Cut(f, "=")
		switch key {
		case "name":
			dir.name = value
		case "node":
			dir.node = value
		case "args":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, false, errors.Wrapf(errors.ErrBadDirective, "bad args option %q", value)
			}
			dir.args = n
			dir.argsSet = true
		case "imports":
			dir.imports = strings.Split(value, ",")
		case "replacement":
			dir.replacement = true
		case "withexception":
			dir.withException = true
		default:
			return nil, false, errors.Wrapf(errors.ErrBadDirective, "unknown option %q", f)
		}
	}
	return dir, true, nil
}

// build assembles the element chain and descriptor for one directive.
func build(dir *directive, pkgElem *element.Element, fn *ast.FuncDecl) (descriptor.Descriptor, error) {
	recv, ok := receiverTypeName(fn)
	if !ok {
		return nil, errors.Wrap(errors.ErrBadDirective, "directive requires a method with a named receiver type")
	}

	anchor := element.NewMethod(fn.Name.Name, element.NewType(recv, pkgElem))

	name := dir.name
	if name == "" {
		name = fn.Name.Name
	}
	if !displayName.MatchString(name) {
		return nil, errors.Wrapf(errors.ErrBadDirective, "illegal plugin name %q", name)
	}

	args := paramCount(fn)
	if dir.argsSet {
		args = dir.args
	}

	switch dir.kind {
	case "fold":
		if dir.replacement || dir.withException {
			return nil, errors.Wrap(errors.ErrBadDirective, "fold plugins cannot carry a replacement node")
		}
		return descriptor.NewFold(name, anchor, args, dir.imports...), nil
	default:
		node := dir.node
		if node == "" {
			node = gen.IRPackage + "." + name + "Node"
		}
		s := descriptor.NewSubstitution(name, anchor, node, args, dir.imports...)
		if dir.replacement || dir.withException {
			s.SetReplacement(dir.withException)
		}
		return s, nil
	}
}

// receiverTypeName unwraps the receiver type down to its identifier.
func receiverTypeName(fn *ast.FuncDecl) (string, bool) {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return "", false
	}
	t := fn.Recv.List[0].Type
	for {
		switch tt := t.(type) {
		case *ast.StarExpr:
			t = tt.X
		case *ast.IndexExpr:
			t = tt.X
		case *ast.IndexListExpr:
			t = tt.X
		case *ast.Ident:
			return tt.Name, true
		default:
			return "", false
		}
	}
}

// paramCount returns the method's declared arity.
func paramCount(fn *ast.FuncDecl) int {
	if fn.Type.Params == nil {
		return 0
	}
	n := 0
	for _, field := range fn.Type.Params.List {
		if len(field.Names) == 0 {
			n++
			continue
		}
		n += len(field.Names)
	}
	return n
}
