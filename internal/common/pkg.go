package common

import (
	"path"
	"reflect"
)

// UnknownStr is printed for values without a better name.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeName returns the short qualified name of t, e.g. "store.Product".
// Pointers are unwrapped, unnamed types fall back to their literal form.
func TypeName(t reflect.Type) string {
	if t == nil {
		return UnknownStr
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return t.String()
	}

	if alias := PkgAlias(t.PkgPath()); alias != "" {
		return alias + "." + t.Name()
	}

	return t.Name()
}
