package maven

import (
	"context"
	"errors"
	"testing"

	"github.com/mvnfetch/mvnfetch/pkg/httputil"
)

// closureFixtures models a small repository:
//
//	app:1.2.0 depends on core (same group, inherits 1.2.0), text:3.1,
//	junit (test scope) and opt (optional).
//	core:1.2.0 depends on text:3.1 (scope "Compile") and api (PROVIDED).
//	text:3.1 has no dependencies.
func closureFixtures() map[string]string {
	return map[string]string{
		"/org/demo/app/maven-metadata.xml": metadataXML("1.2.0", "1.2.0", "1.0.0", "1.2.0"),
		"/org/demo/app/1.2.0/app-1.2.0.pom": `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>org.demo</groupId>
  <artifactId>app</artifactId>
  <version>1.2.0</version>
  <properties><text.version>3.1</text.version></properties>
  <dependencies>
    <dependency><groupId>${project.groupId}</groupId><artifactId>core</artifactId></dependency>
    <dependency><groupId>org.shared</groupId><artifactId>text</artifactId><version>${text.version}</version></dependency>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.13</version><scope>test</scope></dependency>
    <dependency><groupId>org.extra</groupId><artifactId>opt</artifactId><version>1.0</version><optional>true</optional></dependency>
  </dependencies>
</project>`,
		"/org/demo/core/1.2.0/core-1.2.0.pom": `<project>
  <dependencies>
    <dependency><groupId>org.shared</groupId><artifactId>text</artifactId><version>3.1</version><scope>Compile</scope></dependency>
    <dependency><groupId>org.prov</groupId><artifactId>api</artifactId><version>1.0</version><scope>PROVIDED</scope></dependency>
  </dependencies>
</project>`,
		"/org/shared/text/3.1/text-3.1.pom": `<project></project>`,
	}
}

func TestWalkClosure(t *testing.T) {
	repo := newFakeRepo(t, closureFixtures())
	r := newTestResolver(t)
	root := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "release")

	visited := NewVisited()
	g, err := NewWalker(r).Walk(context.Background(), root, visited)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantOrder := []string{"org.demo:app:1.2.0", "org.demo:core:1.2.0", "org.shared:text:3.1"}
	pkgs := visited.Packages()
	if len(pkgs) != len(wantOrder) {
		t.Fatalf("visited %d packages, want %d: %v", len(pkgs), len(wantOrder), pkgs)
	}
	for i, want := range wantOrder {
		if got := pkgs[i].Key(); got != want {
			t.Errorf("visited[%d] = %q, want %q", i, got, want)
		}
	}

	if g.Len() != 3 {
		t.Errorf("graph has %d nodes, want 3", g.Len())
	}
	wantEdges := map[string]bool{
		"org.demo:app:1.2.0>org.demo:core:1.2.0":  true,
		"org.demo:core:1.2.0>org.shared:text:3.1": true,
		"org.demo:app:1.2.0>org.shared:text:3.1":  true,
	}
	edges := g.Edges()
	if len(edges) != len(wantEdges) {
		t.Fatalf("graph has %d edges, want %d: %v", len(edges), len(wantEdges), edges)
	}
	for _, e := range edges {
		if !wantEdges[e.From+">"+e.To] {
			t.Errorf("unexpected edge %s -> %s", e.From, e.To)
		}
	}

	// The shared dependency converges: its descriptor is fetched once even
	// though two packages declare it.
	if n := repo.hitCount("/org/shared/text/3.1/text-3.1.pom"); n != 1 {
		t.Errorf("text pom fetched %d times, want 1", n)
	}

	// Non-compile and optional dependencies stay out entirely.
	for _, excluded := range []string{"junit:junit:4.13", "org.extra:opt:1.0", "org.prov:api:1.0"} {
		if _, ok := g.Node(excluded); ok {
			t.Errorf("excluded dependency %s ended up in the graph", excluded)
		}
	}
}

func TestWalkTerminatesOnCycle(t *testing.T) {
	repo := newFakeRepo(t, map[string]string{
		"/org/demo/a/1.0/a-1.0.pom": `<project><dependencies>
  <dependency><groupId>org.demo</groupId><artifactId>b</artifactId><version>1.0</version></dependency>
</dependencies></project>`,
		"/org/demo/b/1.0/b-1.0.pom": `<project><dependencies>
  <dependency><groupId>org.demo</groupId><artifactId>a</artifactId><version>1.0</version></dependency>
</dependencies></project>`,
	})
	r := newTestResolver(t)
	root := NewPackage(NewCoordinateIn("org.demo", "a", repo.URL()), "1.0")

	visited := NewVisited()
	g, err := NewWalker(r).Walk(context.Background(), root, visited)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if visited.Len() != 2 {
		t.Errorf("visited %d packages, want 2", visited.Len())
	}
	// The back edge is recorded even though the target is not re-expanded.
	if len(g.Edges()) != 2 {
		t.Errorf("graph has %d edges, want 2", len(g.Edges()))
	}
}

func TestWalkAbortsOnMissingMetadata(t *testing.T) {
	repo := newFakeRepo(t, map[string]string{
		// The dependency has no version, so resolution needs metadata that
		// the repository does not serve.
		"/org/demo/a/1.0/a-1.0.pom": `<project><dependencies>
  <dependency><groupId>org.missing</groupId><artifactId>gone</artifactId></dependency>
</dependencies></project>`,
	})
	r := newTestResolver(t)
	root := NewPackage(NewCoordinateIn("org.demo", "a", repo.URL()), "1.0")

	_, err := NewWalker(r).Walk(context.Background(), root, NewVisited())
	if !errors.Is(err, httputil.ErrNotFound) {
		t.Errorf("Walk error = %v, want ErrNotFound", err)
	}
}

func TestWalkHonorsCancellation(t *testing.T) {
	repo := newFakeRepo(t, closureFixtures())
	r := newTestResolver(t)
	root := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWalker(r).Walk(ctx, root, NewVisited())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk error = %v, want context.Canceled", err)
	}
}

func TestVisited(t *testing.T) {
	v := NewVisited()
	a := NewPackage(NewCoordinate("org.demo", "a"), "1.0")
	b := NewPackage(NewCoordinate("org.demo", "b"), "1.0")

	if !v.Add(a) {
		t.Error("first Add returned false")
	}
	if v.Add(a) {
		t.Error("second Add of same package returned true")
	}
	if !v.Add(b) {
		t.Error("Add of distinct package returned false")
	}

	// Same coordinate and version from a different repository is the same
	// logical package.
	mirror := NewPackage(NewCoordinateIn("org.demo", "a", "https://mirror.example"), "1.0")
	if v.Add(mirror) {
		t.Error("Add of mirrored package returned true, want dedup by key")
	}

	if !v.Has(a) || !v.Has(b) {
		t.Error("Has lost a package")
	}
	if v.Len() != 2 {
		t.Errorf("Len() = %d, want 2", v.Len())
	}
	if pkgs := v.Packages(); len(pkgs) != 2 || pkgs[0] != a || pkgs[1] != b {
		t.Errorf("Packages() order = %v, want [a b]", pkgs)
	}
}
