package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/cratesmith/cratesmith/pkg/scaffold"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type newParams struct {
	fx.In

	Profile *profile.Profile
	Runner  scaffold.CargoRunner
}

// newCmd creates the new command for scaffolding a crate.
//
// The command wraps `cargo new` and then adds metadata and auxiliary files.
// Failure of cargo new itself (missing binary, name collision) is fatal and
// exits non-zero with nothing created. Once the base crate exists, the
// remaining steps are best effort: each failed write is reported as a warning
// and the command still exits zero, leaving the base crate intact.
//
// Command flags:
//   - --bin: create a binary crate
//   - --lib: create a library crate (the default)
//   - --license: SPDX identifier overriding the profile default
//
// Example usage:
//
//	# Scaffold a library crate using profile defaults
//	cratesmith new idgen
//
//	# Scaffold a binary crate
//	cratesmith new shortid-rs --bin
//
//	# Override the license for this crate only
//	cratesmith new idgen --license Apache-2.0
func newCmd(p newParams) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Scaffold a new crate with profile-based extras",
		ArgsUsage: "<name>",
		Description: fmt.Sprintf(`Create a new crate via cargo new, patch its manifest with authors,
license, and repository from your profile, and generate README, LICENSE,
CHANGELOG, test/bench stubs, and a GitHub Actions workflow.

The license is resolved as: --license flag, then the profile default, then
%q. Full license text is emitted for %v; other identifiers get a minimal
copyright notice.`, scaffold.Request{}.EffectiveLicense(nil), scaffold.KnownLicenses()),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "bin",
				Usage: "Create a binary crate",
			},
			&cli.BoolFlag{
				Name:  "lib",
				Usage: "Create a library crate (default)",
			},
			&cli.StringFlag{
				Name:    "license",
				Aliases: []string{"l"},
				Usage:   "License override (e.g. MIT, Apache-2.0)",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Directory to create the crate under",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runNew(ctx, cmd, p)
		},
	}
}

func runNew(ctx context.Context, cmd *cli.Command, p newParams) error {
	if cmd.Args().Len() != 1 {
		return errors.New("exactly one crate name argument is required")
	}

	if cmd.Bool("bin") && cmd.Bool("lib") {
		return errors.New("--bin and --lib are mutually exclusive")
	}

	kind := scaffold.Library
	if cmd.Bool("bin") {
		kind = scaffold.Binary
	}

	req := scaffold.Request{
		Name:    cmd.Args().First(),
		Kind:    kind,
		License: cmd.String("license"),
	}

	s := scaffold.New(scaffold.ScaffolderParams{
		Dir:     cmd.String("dir"),
		Profile: p.Profile,
		Runner:  p.Runner,
	})

	report, err := s.Scaffold(ctx, req)
	if err != nil {
		return err
	}

	for _, f := range report.Failed() {
		slog.Warn("Could not write file", "path", f.Path, "err", f.Err)
	}

	if report.OK() {
		fmt.Fprintf(cmd.Writer, "Scaffolded %s crate %q with license %q\n", req.Kind, req.Name, report.License)
	} else {
		fmt.Fprintf(cmd.Writer, "Scaffolded %s crate %q with license %q (%d file(s) could not be written)\n",
			req.Kind, req.Name, report.License, len(report.Failed()))
	}

	return nil
}
