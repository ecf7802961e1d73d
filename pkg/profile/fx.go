package profile

import (
	"log/slog"

	"go.uber.org/fx"
)

var Module = fx.Module("profile", fx.Provide(
	// Function loads the user profile from its fixed location. Load errors
	// degrade to an empty profile with a warning so that every command
	// (including new and doctor) can run without a configured profile.
	func() *Profile {
		p, err := Load()
		if err != nil {
			slog.Warn("Could not load profile, using empty defaults", "err", err)
		}

		return p
	},
))
