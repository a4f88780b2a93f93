package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvnfetch/mvnfetch/pkg/maven"
)

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var (
		latestOnly  bool
		releaseOnly bool
		pick        bool
	)

	cmd := &cobra.Command{
		Use:   "versions GROUP:ARTIFACT",
		Short: "List the versions published for an artifact",
		Long: `List the versions published for an artifact, as recorded in the
repository's maven-metadata.xml. The release and latest versions are marked
when the metadata names them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVersions(cmd.Context(), args[0], latestOnly, releaseOnly, pick)
		},
	}

	cmd.Flags().BoolVar(&latestOnly, "latest", false, "print only the latest version")
	cmd.Flags().BoolVar(&releaseOnly, "release", false, "print only the release version")
	cmd.Flags().BoolVar(&pick, "pick", false, "pick a version interactively")

	return cmd
}

func (c *CLI) runVersions(ctx context.Context, spec string, latestOnly, releaseOnly, pick bool) error {
	group, artifact, version, err := parseSpec(spec)
	if err != nil {
		return err
	}
	if version != "" {
		return fmt.Errorf("versions takes GROUP:ARTIFACT without a version")
	}
	coord := maven.NewCoordinateIn(group, artifact, c.repositoryURL())

	resolver, st, err := c.newResolver(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if latestOnly {
		v, err := resolver.LatestVersion(ctx, coord)
		if err != nil {
			return err
		}
		printKeyValue("latest", v)
		return nil
	}
	if releaseOnly {
		v, err := resolver.ReleaseVersion(ctx, coord)
		if err != nil {
			return err
		}
		printKeyValue("release", v)
		return nil
	}

	versions, err := resolver.Versions(ctx, coord)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		printInfo("No versions listed for %s", coord)
		return nil
	}

	// The markers are informational; metadata without them is still listable.
	release, err := resolver.ReleaseVersion(ctx, coord)
	if err != nil && !errors.Is(err, maven.ErrNoVersion) {
		return err
	}
	latest, err := resolver.LatestVersion(ctx, coord)
	if err != nil && !errors.Is(err, maven.ErrNoVersion) {
		return err
	}

	if pick {
		choice, err := runVersionPicker(newVersionPicker(coord.Key(), versions, release, latest))
		if err != nil {
			return err
		}
		if choice == "" {
			return nil
		}
		printSuccess("Selected %s:%s", coord.Key(), choice)
		printNextStep("Fetch it", fmt.Sprintf("%s fetch %s:%s", appName, coord.Key(), choice))
		return nil
	}

	for _, v := range versions {
		line := StyleValue.Render(v)
		switch v {
		case release:
			line += " " + StyleSuccess.Render("(release)")
		case latest:
			line += " " + StyleDim.Render("(latest)")
		}
		fmt.Println(line)
	}
	return nil
}
