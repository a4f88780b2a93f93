package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvnfetch/mvnfetch/pkg/graph"
	"github.com/mvnfetch/mvnfetch/pkg/maven"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve GROUP:ARTIFACT[:VERSION]",
		Short: "Resolve a package's compile-scope dependency closure",
		Long: `Resolve a package's compile-scope dependency closure.

The version may be omitted or symbolic ("latest", "release"), in which case
it is resolved against the repository's metadata. Dependencies with a scope
other than compile, and optional dependencies, are not expanded.

Fetched metadata and descriptors are cached locally, so repeated runs only
hit the network for coordinates not seen before.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0])
		},
	}
}

// runResolve walks the dependency closure and prints it as a tree.
func (c *CLI) runResolve(ctx context.Context, spec string) error {
	pkg, err := c.newPackage(spec)
	if err != nil {
		return err
	}
	resolver, st, err := c.newResolver(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", spec))
	spinner.Start()

	visited := maven.NewVisited()
	g, err := maven.NewWalker(resolver).Walk(ctx, pkg, visited)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Resolution failed for %s", spec))
		return err
	}
	spinner.Stop()

	printTree(g, pkg.Key())
	printStats(visited.Len(), len(g.Edges()))
	prog.done(fmt.Sprintf("Resolved %d packages", visited.Len()))
	return nil
}

// printTree prints the dependency graph as an indented tree rooted at root.
// A package reachable along several paths is expanded only on its first
// appearance; later appearances are dimmed and left unexpanded.
func printTree(g *graph.Graph, root string) {
	children := make(map[string][]string)
	for _, e := range g.Edges() {
		children[e.From] = append(children[e.From], e.To)
	}

	seen := make(map[string]bool)
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		indent := strings.Repeat("  ", depth)
		if seen[id] {
			fmt.Println(indent + StyleDim.Render(id))
			return
		}
		seen[id] = true
		if depth == 0 {
			fmt.Println(StyleHighlight.Render(id))
		} else {
			fmt.Println(indent + StyleValue.Render(id))
		}
		for _, child := range children[id] {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
}
