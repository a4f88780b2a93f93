package maven

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvnfetch/mvnfetch/pkg/httputil"
	"github.com/mvnfetch/mvnfetch/pkg/store"
	"github.com/mvnfetch/mvnfetch/pkg/xmltree"
)

// ErrNoVersion is returned when a metadata document exists but lacks the
// element needed to answer a version query (no <latest> or <release>).
// Symbolic version resolution fails fast on it rather than guessing.
var ErrNoVersion = errors.New("no version in metadata")

// Resolver fetches and caches repository documents for packages.
//
// Every document class goes through the same read path: in-memory memo on
// the owning object, then the persisted store, then the network. Freshly
// fetched non-empty content is written back to both. Resolver itself is
// stateless; it is safe to share one across a whole traversal.
type Resolver struct {
	store  store.Store
	client *httputil.Client
	logf   func(string, ...any)
}

// NewResolver creates a resolver over the given store and HTTP client.
func NewResolver(st store.Store, client *httputil.Client) *Resolver {
	return &Resolver{
		store:  st,
		client: client,
		logf:   func(string, ...any) {},
	}
}

// SetLogf installs a progress/diagnostics callback (optional).
func (r *Resolver) SetLogf(logf func(string, ...any)) {
	if logf != nil {
		r.logf = logf
	}
}

// metadataDoc returns the parsed maven-metadata.xml for a coordinate,
// fetching and caching it on first access.
func (r *Resolver) metadataDoc(ctx context.Context, c *Coordinate) (*xmltree.Node, error) {
	if c.metadata == "" {
		key := metadataKey(c.Group, c.Artifact)
		data, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			c.metadata = string(data)
			r.logf("metadata cache hit: %s", c)
		} else {
			url := c.pageURL() + "/maven-metadata.xml"
			r.logf("fetch metadata: %s", url)
			text, err := r.client.GetText(ctx, url)
			if err != nil {
				return nil, fmt.Errorf("fetch metadata for %s: %w", c, err)
			}
			if len(text) > 0 {
				c.metadata = text
				if err := r.store.Set(ctx, key, []byte(text)); err != nil {
					return nil, err
				}
			}
		}
	}
	doc, err := xmltree.Parse([]byte(c.metadata))
	if err != nil {
		return nil, fmt.Errorf("metadata for %s: %w", c, err)
	}
	return doc, nil
}

// LatestVersion returns the version named by the metadata's <latest>
// element. Returns [ErrNoVersion] if the element is absent.
func (r *Resolver) LatestVersion(ctx context.Context, c *Coordinate) (string, error) {
	doc, err := r.metadataDoc(ctx, c)
	if err != nil {
		return "", err
	}
	if elem := doc.Find("latest"); elem != nil {
		return elem.Text, nil
	}
	return "", fmt.Errorf("%w: no latest element for %s", ErrNoVersion, c)
}

// ReleaseVersion returns the version named by the metadata's <release>
// element. Returns [ErrNoVersion] if the element is absent.
func (r *Resolver) ReleaseVersion(ctx context.Context, c *Coordinate) (string, error) {
	doc, err := r.metadataDoc(ctx, c)
	if err != nil {
		return "", err
	}
	if elem := doc.Find("release"); elem != nil {
		return elem.Text, nil
	}
	return "", fmt.Errorf("%w: no release element for %s", ErrNoVersion, c)
}

// Versions returns every version listed in the metadata document, in
// document order. An empty list is not an error.
func (r *Resolver) Versions(ctx context.Context, c *Coordinate) ([]string, error) {
	doc, err := r.metadataDoc(ctx, c)
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, elem := range doc.FindAll("version") {
		versions = append(versions, elem.Text)
	}
	return versions, nil
}
