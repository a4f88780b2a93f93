package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvnfetch/mvnfetch/pkg/maven"
	"github.com/mvnfetch/mvnfetch/pkg/store"
)

// fetchCommand creates the fetch command.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		sources bool
		javadoc bool
	)

	cmd := &cobra.Command{
		Use:   "fetch GROUP:ARTIFACT[:VERSION]",
		Short: "Download a package and its dependencies into the cache",
		Long: `Download a package and its compile-scope dependencies into the cache.

The dependency closure is resolved first, then the jar of every package in
it is downloaded. Jars already present in the cache are skipped. A package
whose jar is not published (descriptor-only artifacts such as BOMs) is
reported but does not fail the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFetch(cmd.Context(), args[0], sources, javadoc)
		},
	}

	cmd.Flags().BoolVar(&sources, "sources", false, "also fetch -sources companion jars")
	cmd.Flags().BoolVar(&javadoc, "javadoc", false, "also fetch -javadoc companion jars")

	return cmd
}

// runFetch resolves the closure and downloads every jar in it.
func (c *CLI) runFetch(ctx context.Context, spec string, sources, javadoc bool) error {
	pkg, err := c.newPackage(spec)
	if err != nil {
		return err
	}
	resolver, st, err := c.newResolver(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", spec))
	spinner.Start()

	visited := maven.NewVisited()
	if _, err := maven.NewWalker(resolver).Walk(ctx, pkg, visited); err != nil {
		spinner.StopWithError(fmt.Sprintf("Resolution failed for %s", spec))
		return err
	}
	spinner.Stop()

	var postfixes []string
	if sources {
		postfixes = append(postfixes, "-sources")
	}
	if javadoc {
		postfixes = append(postfixes, "-javadoc")
	}

	fetched := 0
	for _, p := range visited.Packages() {
		ok, err := resolver.CacheArtifact(ctx, p, "")
		if err != nil {
			return fmt.Errorf("fetch jar for %s: %w", p, err)
		}
		if !ok {
			printWarning("No jar published for %s", p)
		} else {
			fetched++
		}

		for _, postfix := range postfixes {
			ok, err := resolver.CacheArtifact(ctx, p, postfix)
			if err != nil {
				return fmt.Errorf("fetch %s jar for %s: %w", strings.TrimPrefix(postfix, "-"), p, err)
			}
			if !ok {
				printDetail("no %s jar for %s", strings.TrimPrefix(postfix, "-"), p)
			}
		}
	}

	printSuccess("Fetched %d of %d jars", fetched, visited.Len())
	if fs, ok := st.(*store.FileStore); ok {
		printDetail("Cache: %s", fs.Root())
	}
	return nil
}
