package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvnfetch/mvnfetch/pkg/graph"
	"github.com/mvnfetch/mvnfetch/pkg/maven"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export GROUP:ARTIFACT[:VERSION]",
		Short: "Export the dependency graph as DOT or SVG",
		Long: `Export a package's dependency graph in Graphviz DOT format, or render
it directly to SVG. With no output file, DOT is written to stdout; SVG
defaults to <artifact>-deps.svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, spec, format, output string) error {
	if format != formatDOT && format != formatSVG {
		return fmt.Errorf("unknown format %q (expected dot or svg)", format)
	}

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
	g, err := maven.NewWalker(resolver).Walk(ctx, pkg, visited)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Resolution failed for %s", spec))
		return err
	}
	spinner.Stop()

	dot := graph.ToDOT(g)

	if format == formatDOT {
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Exported dependency graph")
		printFile(output)
		printStats(g.Len(), len(g.Edges()))
		return nil
	}

	svg, err := graph.RenderSVG(ctx, dot)
	if err != nil {
		return fmt.Errorf("render SVG: %w", err)
	}
	if output == "" {
		output = pkg.Coord.Artifact + "-deps.svg"
	}
	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Exported dependency graph")
	printFile(output)
	printStats(g.Len(), len(g.Edges()))
	return nil
}
