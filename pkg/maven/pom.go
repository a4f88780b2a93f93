package maven

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvnfetch/mvnfetch/pkg/xmltree"
)

// pomDoc returns the parsed POM descriptor for a resolved package,
// fetching and caching it on first access. The package's version must be
// concrete; callers resolve before asking for the descriptor.
func (r *Resolver) pomDoc(ctx context.Context, p *Package) (*xmltree.Node, error) {
	if err := p.Resolve(ctx, r); err != nil {
		return nil, err
	}
	if p.pom == "" {
		key := pomKey(p.Coord.Group, p.Coord.Artifact, p.version)
		data, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			p.pom = string(data)
			r.logf("pom cache hit: %s", p)
		} else {
			url := p.fileURL(".pom")
			r.logf("fetch pom: %s", url)
			text, err := r.client.GetText(ctx, url)
			if err != nil {
				return nil, fmt.Errorf("fetch pom for %s: %w", p, err)
			}
			if len(text) > 0 {
				p.pom = text
				if err := r.store.Set(ctx, key, []byte(text)); err != nil {
					return nil, err
				}
			}
		}
	}
	doc, err := xmltree.Parse([]byte(p.pom))
	if err != nil {
		return nil, fmt.Errorf("pom for %s: %w", p, err)
	}
	return doc, nil
}

// Properties returns the package's property table: the implicit
// self-referential properties (project.version, project.groupId,
// project.artifactId) overlaid with every property declared in the
// descriptor's <properties> block. A declared property may redeclare and
// thus override an implicit one.
func (r *Resolver) Properties(ctx context.Context, p *Package) (map[string]string, error) {
	doc, err := r.pomDoc(ctx, p)
	if err != nil {
		return nil, err
	}
	return descriptorProperties(doc, p), nil
}

func descriptorProperties(doc *xmltree.Node, p *Package) map[string]string {
	props := map[string]string{
		"project.version":    p.version,
		"project.groupId":    p.Coord.Group,
		"project.artifactId": p.Coord.Artifact,
	}
	if block := doc.Find("properties"); block != nil {
		for _, prop := range block.Children {
			props[prop.Name] = prop.Text
		}
	}
	return props
}

// Dependencies returns the package's declared dependency entries with
// placeholders expanded and versions defaulted.
//
// A dependency without an explicit <version> inherits the parent's exact
// version when it shares the parent's group (the multi-module convention),
// and otherwise falls back to the symbolic [DefaultVersion]. Scope defaults
// to "compile" and optional to false. Entries missing a group or artifact
// after expansion are skipped as malformed.
func (r *Resolver) Dependencies(ctx context.Context, p *Package) ([]*Dependency, error) {
	doc, err := r.pomDoc(ctx, p)
	if err != nil {
		return nil, err
	}
	props := descriptorProperties(doc, p)

	var out []*Dependency
	for _, block := range doc.FindAll("dependencies") {
		for _, entry := range block.Children {
			if entry.Name != "dependency" {
				continue
			}
			group := Expand(props, entry.ChildText("groupId"))
			artifact := Expand(props, entry.ChildText("artifactId"))
			if group == "" || artifact == "" {
				r.logf("skip malformed dependency entry in %s", p)
				continue
			}

			version := DefaultVersion
			if v := entry.Child("version"); v != nil {
				version = Expand(props, v.Text)
			} else if group == p.Coord.Group {
				version = p.version
			}

			dep := &Dependency{
				Package: NewPackage(NewCoordinateIn(group, artifact, p.Coord.Repository), version),
				Scope:   DefaultScope,
			}
			if s := entry.Child("scope"); s != nil {
				dep.Scope = s.Text
			}
			if o := entry.Child("optional"); o != nil {
				dep.Optional = strings.EqualFold(strings.TrimSpace(o.Text), "true")
			}
			out = append(out, dep)
		}
	}
	return out, nil
}
