package maven

import "strings"

// DefaultScope is assumed when a dependency entry declares no scope.
const DefaultScope = "compile"

// Dependency is a package as declared by a parent descriptor's dependency
// entry, carrying the declared scope and optional flag.
type Dependency struct {
	*Package

	Scope    string
	Optional bool
}

// Traversable reports whether the dependency is eligible for transitive
// expansion: compile scope (case-insensitive) and not optional.
func (d *Dependency) Traversable() bool {
	return strings.EqualFold(d.Scope, DefaultScope) && !d.Optional
}
