package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ProfileFileName is the well-known profile file in the user's home directory.
	// The file is owned by the companion profile tool; cratesmith only reads it.
	ProfileFileName = ".cargo-me.toml"

	// DefaultLicense is the SPDX identifier used when neither the --license flag
	// nor the profile specifies one
	DefaultLicense = "MIT"
)
