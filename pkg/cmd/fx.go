package cmd

import (
	"github.com/cratesmith/cratesmith/pkg/scaffold"
	"go.uber.org/fx"
)

var Module = fx.Module("cli",
	fx.Provide(
		func() scaffold.CargoRunner { return scaffold.NewExecRunner() },
		fx.Annotate(doctor, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(newCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(profileCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
