package maven

import (
	"context"
	"testing"
	"time"

	"github.com/mvnfetch/mvnfetch/pkg/httputil"
	"github.com/mvnfetch/mvnfetch/pkg/store"
)

const appPOM = `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>org.demo</groupId>
  <artifactId>app</artifactId>
  <version>1.2.0</version>
  <properties>
    <text.version>3.1</text.version>
  </properties>
  <dependencies>
    <dependency>
      <groupId>${project.groupId}</groupId>
      <artifactId>core</artifactId>
    </dependency>
    <dependency>
      <groupId>org.shared</groupId>
      <artifactId>text</artifactId>
      <version>${text.version}</version>
    </dependency>
    <dependency>
      <groupId>org.shared</groupId>
      <artifactId>codec</artifactId>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>org.extra</groupId>
      <artifactId>opt</artifactId>
      <version>1.0</version>
      <optional>true</optional>
    </dependency>
    <dependency>
      <groupId>${undeclared.group}</groupId>
      <artifactId>ghost</artifactId>
    </dependency>
  </dependencies>
</project>`

func TestDependencies(t *testing.T) {
	repo := newFakeRepo(t, map[string]string{
		"/org/demo/app/1.2.0/app-1.2.0.pom": appPOM,
	})
	r := newTestResolver(t)
	p := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	deps, err := r.Dependencies(context.Background(), p)
	if err != nil {
		t.Fatalf("Dependencies: %v", err)
	}

	// The entry with an undeclared group expands to empty and is skipped.
	want := []struct {
		key         string
		scope       string
		optional    bool
		traversable bool
	}{
		{"org.demo:core:1.2.0", "compile", false, true},
		{"org.shared:text:3.1", "compile", false, true},
		{"org.shared:codec:release", "compile", false, true},
		{"junit:junit:4.13", "test", false, false},
		{"org.extra:opt:1.0", "compile", true, false},
	}
	if len(deps) != len(want) {
		t.Fatalf("got %d dependencies, want %d", len(deps), len(want))
	}
	for i, w := range want {
		d := deps[i]
		if got := d.Coord.Key() + ":" + d.Version(); got != w.key {
			t.Errorf("dep[%d] = %q, want %q", i, got, w.key)
		}
		if d.Scope != w.scope {
			t.Errorf("dep[%d].Scope = %q, want %q", i, d.Scope, w.scope)
		}
		if d.Optional != w.optional {
			t.Errorf("dep[%d].Optional = %v, want %v", i, d.Optional, w.optional)
		}
		if got := d.Traversable(); got != w.traversable {
			t.Errorf("dep[%d].Traversable() = %v, want %v", i, got, w.traversable)
		}
		if d.Coord.Repository != repo.URL() {
			t.Errorf("dep[%d] bound to repository %q, want parent's", i, d.Coord.Repository)
		}
	}
}

func TestDependenciesVersionDefaulting(t *testing.T) {
	repo := newFakeRepo(t, map[string]string{
		"/org/demo/app/1.2.0/app-1.2.0.pom": appPOM,
	})
	r := newTestResolver(t)
	p := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	deps, err := r.Dependencies(context.Background(), p)
	if err != nil {
		t.Fatalf("Dependencies: %v", err)
	}

	// Same group without a version inherits the parent's exact version.
	if got := deps[0].Version(); got != "1.2.0" {
		t.Errorf("same-group dep version = %q, want parent's %q", got, "1.2.0")
	}
	if deps[0].VersionIsUnsure() {
		t.Error("inherited version should be concrete")
	}
	// Foreign group without a version falls back to the symbolic default.
	if got := deps[2].Version(); got != DefaultVersion {
		t.Errorf("foreign dep version = %q, want %q", got, DefaultVersion)
	}
	if !deps[2].VersionIsUnsure() {
		t.Error("defaulted version should be symbolic")
	}
}

func TestProperties(t *testing.T) {
	repo := newFakeRepo(t, map[string]string{
		"/org/demo/app/1.2.0/app-1.2.0.pom": appPOM,
	})
	r := newTestResolver(t)
	p := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	props, err := r.Properties(context.Background(), p)
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}

	want := map[string]string{
		"project.version":    "1.2.0",
		"project.groupId":    "org.demo",
		"project.artifactId": "app",
		"text.version":       "3.1",
	}
	for k, v := range want {
		if props[k] != v {
			t.Errorf("props[%q] = %q, want %q", k, props[k], v)
		}
	}
}

func TestPropertiesDeclaredOverridesImplicit(t *testing.T) {
	pom := `<project>
  <properties>
    <project.version>overridden</project.version>
  </properties>
</project>`
	repo := newFakeRepo(t, map[string]string{
		"/org/demo/app/1.2.0/app-1.2.0.pom": pom,
	})
	r := newTestResolver(t)
	p := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	props, err := r.Properties(context.Background(), p)
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}
	if props["project.version"] != "overridden" {
		t.Errorf("props[project.version] = %q, want %q", props["project.version"], "overridden")
	}
}

func TestPomServedFromStore(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	if err := st.Set(ctx, pomKey("org.demo", "app", "1.2.0"), []byte(appPOM)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// The repository would fail every request; the descriptor must come
	// from the store.
	repo := newFakeRepo(t, nil)
	r := NewResolver(st, httputil.NewClient(5*time.Second, nil))
	p := NewPackage(NewCoordinateIn("org.demo", "app", repo.URL()), "1.2.0")

	deps, err := r.Dependencies(ctx, p)
	if err != nil {
		t.Fatalf("Dependencies: %v", err)
	}
	if len(deps) != 5 {
		t.Errorf("got %d dependencies, want 5", len(deps))
	}
	if n := repo.hitCount("/org/demo/app/1.2.0/app-1.2.0.pom"); n != 0 {
		t.Errorf("pom fetched %d times, want 0", n)
	}
}
