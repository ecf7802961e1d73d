package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type profileParams struct {
	fx.In

	Profile *profile.Profile
}

// profileCmd creates the profile command for inspecting the resolved profile.
//
// The command is strictly read-only: the profile file belongs to the
// companion tool and cratesmith never writes it. Unset fields are shown as
// "(not set)" so it is obvious which metadata will be blank in scaffolded
// crates.
//
// Example usage:
//
//	cratesmith profile
func profileCmd(p profileParams) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show the resolved user profile",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := profile.Path()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				fmt.Fprintf(cmd.Writer, "Profile: %s (missing, using empty defaults)\n\n", path)
			} else {
				fmt.Fprintf(cmd.Writer, "Profile: %s\n\n", path)
			}

			printField(cmd, "name", p.Profile.Name)
			printField(cmd, "email", p.Profile.Email)
			printField(cmd, "github", p.Profile.GitHub)
			printField(cmd, "organization", p.Profile.Organization)
			printField(cmd, "license", p.Profile.License)
			printField(cmd, "repository_base", p.Profile.RepositoryBase)

			return nil
		},
	}
}

func printField(cmd *cli.Command, name, value string) {
	if value == "" {
		value = "(not set)"
	}

	fmt.Fprintf(cmd.Writer, "%-16s %s\n", name, value)
}
