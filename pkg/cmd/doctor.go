package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/cratesmith/cratesmith/pkg/scaffold"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type doctorParams struct {
	fx.In

	Runner scaffold.CargoRunner
}

// doctor creates the doctor command for checking ambient preconditions.
//
// Scaffolding requires cargo on PATH; its absence is otherwise only reported
// when `new` fails. The doctor command surfaces that precondition ahead of
// time, along with whether a profile file is present.
//
// Example usage:
//
//	cratesmith doctor
func doctor(p doctorParams) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check that cargo is available and a profile is configured",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			version, err := p.Runner.Version(ctx)
			if err != nil {
				fmt.Fprintln(cmd.Writer, "✗ cargo: not found on PATH")
				return err
			}

			fmt.Fprintf(cmd.Writer, "✓ %s\n", version)

			path, err := profile.Path()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintf(cmd.Writer, "- profile: %s not found (scaffolding works, metadata will be blank)\n", path)
			} else {
				fmt.Fprintf(cmd.Writer, "✓ profile: %s\n", path)
			}

			return nil
		},
	}
}
