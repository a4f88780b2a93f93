package maven

import (
	"context"

	"github.com/mvnfetch/mvnfetch/pkg/graph"
)

// Visited tracks packages already processed during a traversal, keyed by
// resolved coordinate ([Package.Key]). The set is owned by the caller and
// passed explicitly - there is no shared default - so independent
// traversals never leak state into each other.
type Visited struct {
	seen  map[string]*Package
	order []string
}

// NewVisited creates an empty visited set.
func NewVisited() *Visited {
	return &Visited{seen: make(map[string]*Package)}
}

// Add inserts a resolved package. Returns false if an equal package
// (same group, artifact and resolved version) was already present.
func (v *Visited) Add(p *Package) bool {
	key := p.Key()
	if _, ok := v.seen[key]; ok {
		return false
	}
	v.seen[key] = p
	v.order = append(v.order, key)
	return true
}

// Has reports whether an equal package is already present.
func (v *Visited) Has(p *Package) bool {
	_, ok := v.seen[p.Key()]
	return ok
}

// Len returns the number of packages in the set.
func (v *Visited) Len() int { return len(v.seen) }

// Packages returns the packages in insertion order.
func (v *Visited) Packages() []*Package {
	out := make([]*Package, 0, len(v.order))
	for _, key := range v.order {
		out = append(out, v.seen[key])
	}
	return out
}

// Walker recursively expands a package's compile-scope dependency closure.
type Walker struct {
	resolver *Resolver
	logf     func(string, ...any)
}

// NewWalker creates a walker over the given resolver.
func NewWalker(r *Resolver) *Walker {
	return &Walker{resolver: r, logf: r.logf}
}

// SetLogf installs a progress/diagnostics callback (optional).
func (w *Walker) SetLogf(logf func(string, ...any)) {
	if logf != nil {
		w.logf = logf
	}
}

// Walk resolves root and expands its dependency closure, recording every
// visited package and dependency relation in the returned graph.
//
// A dependency is expanded iff its scope is "compile" (case-insensitive),
// it is not optional, and its resolved coordinate is not already in
// visited. Eligible dependencies enter the visited set before recursion,
// so a coordinate reachable along several paths is processed exactly once;
// together with the finiteness of the remote graph this guarantees
// termination, cycles included. Non-eligible dependencies are neither
// expanded nor added to the set.
//
// Any metadata, descriptor or transport failure aborts the traversal.
func (w *Walker) Walk(ctx context.Context, root *Package, visited *Visited) (*graph.Graph, error) {
	if err := root.Resolve(ctx, w.resolver); err != nil {
		return nil, err
	}
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: root.Key()})
	visited.Add(root)
	if err := w.walk(ctx, root, visited, g, 0); err != nil {
		return nil, err
	}
	return g, nil
}

func (w *Walker) walk(ctx context.Context, pkg *Package, visited *Visited, g *graph.Graph, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deps, err := w.resolver.Dependencies(ctx, pkg)
	if err != nil {
		return err
	}
	for _, dep := range deps {
		if !dep.Traversable() {
			w.logf("skip %s (scope=%s optional=%t)", dep.Coord, dep.Scope, dep.Optional)
			continue
		}
		if err := dep.Resolve(ctx, w.resolver); err != nil {
			return err
		}
		_ = g.AddNode(graph.Node{ID: dep.Key(), Meta: map[string]string{"scope": dep.Scope}})
		_ = g.AddEdge(graph.Edge{From: pkg.Key(), To: dep.Key()})

		if !visited.Add(dep.Package) {
			continue
		}
		w.logf("visit %s (depth %d)", dep.Package, depth+1)
		if err := w.walk(ctx, dep.Package, visited, g, depth+1); err != nil {
			return err
		}
	}
	return nil
}
