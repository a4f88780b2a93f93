package maven

import (
	"context"
	"strings"
)

// Symbolic version markers. A package constructed with one of these (or an
// empty version) has no concrete version until [Package.Resolve] runs.
const (
	VersionLatest  = "latest"
	VersionRelease = "release"

	// DefaultVersion is assumed when a dependency declares no version and
	// no inheritance rule applies.
	DefaultVersion = VersionRelease
)

// Package is a coordinate pinned to a version. The version may start out
// symbolic ("latest", "release", empty); Resolve replaces it with the
// concrete version from repository metadata, exactly once.
type Package struct {
	Coord *Coordinate

	version string
	unsure  bool

	// pom memoizes the fetched descriptor text for the life of the object.
	pom string
}

// NewPackage creates a package for the coordinate at the given version.
// Empty, "latest" and "release" (any case, surrounding space ignored) mark
// the version as symbolic.
func NewPackage(c *Coordinate, version string) *Package {
	p := &Package{Coord: c, version: version}
	switch strings.ToLower(strings.TrimSpace(version)) {
	case "", VersionLatest, VersionRelease:
		p.unsure = true
	}
	return p
}

// Version returns the current version string. Before Resolve this may be a
// symbolic marker; afterwards it is always concrete.
func (p *Package) Version() string { return p.version }

// VersionIsUnsure reports whether the version is still symbolic.
func (p *Package) VersionIsUnsure() bool { return p.unsure }

// Resolve replaces a symbolic version with the concrete version from the
// repository's metadata document. It is idempotent and memoized: once a
// concrete version is known it is never recomputed. An empty version
// resolves as [DefaultVersion].
//
// Returns [ErrNoVersion] if the metadata document lacks the requested
// element, or a transport error if the document cannot be fetched.
func (p *Package) Resolve(ctx context.Context, r *Resolver) error {
	if !p.unsure {
		return nil
	}
	marker := strings.ToLower(strings.TrimSpace(p.version))
	if marker == "" {
		marker = DefaultVersion
	}

	var resolved string
	var err error
	switch marker {
	case VersionLatest:
		resolved, err = r.LatestVersion(ctx, p.Coord)
	default:
		resolved, err = r.ReleaseVersion(ctx, p.Coord)
	}
	if err != nil {
		return err
	}
	p.version = resolved
	p.unsure = false
	return nil
}

// Key returns the identity string "group:artifact:version".
//
// The visited set and graph nodes are keyed by this value, so it must only
// be called after Resolve: keying on a symbolic version would let the same
// logical package slip into a traversal twice.
func (p *Package) Key() string {
	return p.Coord.Key() + ":" + p.version
}

// String implements fmt.Stringer.
func (p *Package) String() string { return p.Key() }

// fileURL is the repository URL of a file in the package's version
// directory, e.g. fileURL(".pom") or fileURL("-sources.jar").
func (p *Package) fileURL(postfix string) string {
	return p.Coord.pageURL() + "/" + p.version + "/" + p.Coord.Artifact + "-" + p.version + postfix
}
