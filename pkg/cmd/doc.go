// Package cmd provides CLI commands for the cratesmith tool.
//
// This package implements the command-line interface for cratesmith,
// providing commands for scaffolding new Rust crates and inspecting the
// environment the tool runs in. Each command is implemented as a separate
// function that returns a *cli.Command, following the urfave/cli/v3 pattern,
// and is wired into the application through the package's fx module.
//
// # Available Commands
//
// The cmd package currently provides:
//   - new: Scaffold a new crate with profile-based extras
//   - profile: Show the resolved user profile and where it was loaded from
//   - doctor: Check that cargo is available and report its version
//
// # Example Usage
//
// Commands are registered in the main application and can be invoked
// from the command line:
//
//	cratesmith new shortid-rs --bin           # Scaffold a binary crate
//	cratesmith new idgen --license Apache-2.0 # Scaffold a library with a license override
//	cratesmith profile                        # Inspect the active profile
//	cratesmith doctor                         # Verify cargo is on PATH
//
// # Exit Codes
//
// The new command distinguishes fatal from best-effort failures: a failed
// `cargo new` exits non-zero with nothing created, while auxiliary file
// failures after base creation are reported as warnings on stderr and the
// command still exits zero.
package cmd
