package main

import (
	"context"
	"os"

	"github.com/cratesmith/cratesmith/pkg/cmd"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			func() []string { return os.Args },
			func() context.Context { return context.Background() },
			func() *cmd.Version {
				return &cmd.Version{Version: version, Commit: commit, Timestamp: date}
			},
		),
		profile.Module,
		cmd.Module,
	).Run()
}
