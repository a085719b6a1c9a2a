package cli

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Version is the version of rangectl. It is overwritten at build time with -ldflags "-X ...cli.Version=<version>".
var Version = "dev"

// versionString returns "v<version>" for release builds and "commit: <version>" for everything else.
func versionString(version string) string {
	if _, err := goversion.NewSemver(version); err == nil {
		return "v" + version
	}

	return "commit: " + version
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of rangectl",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Name, versionString(Version))

			return err
		}),
	}
}
