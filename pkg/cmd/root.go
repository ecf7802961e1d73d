package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main cratesmith CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations.
//
// The application is assembled from the commands registered in the fx
// `group:"commands"` value group, so adding a command means adding a provider
// to this package's Module. Execution happens in an fx start hook and the
// process exit code is delivered through the Shutdowner: zero on success,
// one when the invoked command returns an error.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "cratesmith",
		Usage: "Scaffold new Rust crates with profile-based extras",
		Description: `cratesmith is a CLI tool that wraps cargo new, filling in metadata
(authors, license, repository) from your persisted profile and generating the
auxiliary files every crate wants: README, LICENSE, CHANGELOG, test and
benchmark stubs, and a GitHub Actions CI workflow.`,
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
