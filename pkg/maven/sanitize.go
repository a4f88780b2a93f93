package maven

import "strings"

// reservedReplacer strips characters that have meaning to shells or
// filesystems but never appear in legitimate Maven identifiers.
var reservedReplacer = strings.NewReplacer(":", "", "?", "", "=", "")

// slashReplacer strips path separators from identifiers that must stay a
// single path segment.
var slashReplacer = strings.NewReplacer("/", "", "\\", "")

// GroupPath maps a group identifier to a relative cache path.
// Parent-directory sequences are removed first, then the conventional dots
// become path separators ("org.example" -> "org/example"), then reserved
// characters are stripped. Total over any input, including empty strings.
func GroupPath(group string) string {
	g := strings.ReplaceAll(group, "..", "")
	g = strings.ReplaceAll(g, ".", "/")
	return reservedReplacer.Replace(g)
}

// ArtifactPath maps an artifact identifier to a single safe path segment.
// Unlike groups, artifacts must never introduce path structure, so slashes
// are stripped along with the reserved characters.
func ArtifactPath(artifact string) string {
	a := strings.ReplaceAll(artifact, "..", "")
	a = slashReplacer.Replace(a)
	return reservedReplacer.Replace(a)
}

// VersionPath maps a version string to a single safe path segment,
// applying the same rules as [ArtifactPath].
func VersionPath(version string) string {
	v := strings.ReplaceAll(version, "..", "")
	v = slashReplacer.Replace(v)
	return reservedReplacer.Replace(v)
}

// metadataKey is the store key for a coordinate's repository metadata.
func metadataKey(group, artifact string) string {
	return "metadata/" + GroupPath(group) + "/" + ArtifactPath(artifact) + "/maven-metadata.xml"
}

// pomKey is the store key for a version's POM descriptor.
func pomKey(group, artifact, version string) string {
	a := ArtifactPath(artifact)
	return "pom/" + GroupPath(group) + "/" + a + "/" + a + "-" + VersionPath(version) + ".pom"
}

// jarKey is the store key for a jar artifact. The group segment is omitted
// deliberately: jars share one flat directory keyed by artifact and
// version, matching the established cache layout.
func jarKey(artifact, version, postfix string) string {
	return "jar/" + ArtifactPath(artifact) + "-" + VersionPath(version) + postfix + ".jar"
}
