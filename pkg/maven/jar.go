package maven

import (
	"context"
	"errors"

	"github.com/mvnfetch/mvnfetch/pkg/httputil"
)

// CacheArtifact downloads the package's jar into the store, or does
// nothing if it is already cached. The postfix selects the artifact
// variant: "" for the primary jar, "-sources"/"-javadoc" for companions.
//
// Returns (true, nil) when the jar is in the cache afterwards, and
// (false, nil) when the repository has no such file - companion artifacts
// legitimately may not exist. Any other transport or store error is
// returned as-is.
func (r *Resolver) CacheArtifact(ctx context.Context, p *Package, postfix string) (bool, error) {
	if err := p.Resolve(ctx, r); err != nil {
		return false, err
	}
	key := jarKey(p.Coord.Artifact, p.version, postfix)

	ok, err := r.store.Has(ctx, key)
	if err != nil {
		return false, err
	}
	if ok {
		r.logf("jar cache hit: %s%s", p, postfix)
		return true, nil
	}

	url := p.fileURL(postfix + ".jar")
	r.logf("fetch jar: %s", url)
	data, err := r.client.GetBytes(ctx, url)
	if errors.Is(err, httputil.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return false, err
	}
	return true, nil
}
