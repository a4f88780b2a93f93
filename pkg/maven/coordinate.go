package maven

import (
	"net/url"
	"strings"
)

// DefaultRepository is Maven Central, used when no repository is given.
const DefaultRepository = "https://repo1.maven.org/maven2"

// Coordinate identifies an artifact within a repository by group and
// artifact ID. It owns the process-lifetime cache of the fetched
// maven-metadata.xml document for that pair.
//
// Identity is the (group, artifact) pair; the repository does not
// participate in equality.
type Coordinate struct {
	Group      string
	Artifact   string
	Repository string

	// metadata memoizes the fetched metadata document text. Populated once
	// by the resolver on first access, never invalidated within a run.
	metadata string
}

// NewCoordinate creates a coordinate bound to [DefaultRepository].
func NewCoordinate(group, artifact string) *Coordinate {
	return NewCoordinateIn(group, artifact, DefaultRepository)
}

// NewCoordinateIn creates a coordinate bound to the given repository base
// URL (without a trailing slash).
func NewCoordinateIn(group, artifact, repository string) *Coordinate {
	return &Coordinate{
		Group:      group,
		Artifact:   artifact,
		Repository: strings.TrimRight(repository, "/"),
	}
}

// Key returns the identity string "group:artifact".
func (c *Coordinate) Key() string {
	return c.Group + ":" + c.Artifact
}

// Equal reports whether two coordinates identify the same artifact.
// Both the group and the artifact must match.
func (c *Coordinate) Equal(other *Coordinate) bool {
	if other == nil {
		return false
	}
	return c.Group == other.Group && c.Artifact == other.Artifact
}

// String implements fmt.Stringer.
func (c *Coordinate) String() string { return c.Key() }

// pageURL is the repository URL of the artifact's directory, with group
// dots expanded to path segments and every segment percent-encoded.
func (c *Coordinate) pageURL() string {
	segments := strings.Split(c.Group, ".")
	escaped := make([]string, 0, len(segments)+1)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	escaped = append(escaped, url.PathEscape(c.Artifact))
	return c.Repository + "/" + strings.Join(escaped, "/")
}
