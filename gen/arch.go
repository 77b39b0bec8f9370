package gen

import "strings"

// architectures maps an architecture's name as it appears in a package path
// to the canonical name used by the host's code-generation back end.
// Populated once at startup and never mutated; extending plugingen to a new
// architecture means adding one entry here.
var architectures = map[string]string{
	"amd64":   "AMD64",
	"aarch64": "aarch64",
	"riscv64": "riscv64",
}

// CanonicalArchitecture resolves the architecture segment of a package path
// (the package's simple name) to its canonical back-end name. ok is false
// for packages that are not architecture specific.
func CanonicalArchitecture(pkgPath string) (name string, ok bool) {
	seg := pkgPath
	if i := strings.LastIndex(pkgPath, "/"); i >= 0 {
		seg = pkgPath[i+1:]
	}
	name, ok = architectures[seg]
	return name, ok
}
