package scaffold

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type (
	// CargoRunner is the capability interface for base project creation.
	// Production code uses ExecRunner; tests substitute a fake that writes a
	// minimal crate layout directly.
	CargoRunner interface {
		// NewProject creates the base crate (root directory, manifest, and
		// src file) for name under dir. A non-nil error is always fatal to
		// the scaffolding run.
		NewProject(ctx context.Context, dir, name string, kind Kind) error

		// Version reports the cargo toolchain version, erroring when cargo
		// is unavailable.
		Version(ctx context.Context) (string, error)
	}

	// ExecRunner runs the real cargo binary via os/exec.
	ExecRunner struct {
		cargo string
	}
)

// NewExecRunner creates a runner that invokes "cargo" from PATH.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{cargo: "cargo"}
}

// NewProject invokes `cargo new <name> --bin|--lib` in dir. The invocation is
// blocking with no timeout beyond ctx; cargo completes in well under a second
// under normal conditions.
//
// Failures split into the two fatal classes the tool distinguishes:
//   - cargo missing from PATH (precondition failure)
//   - cargo new exiting non-zero (e.g. directory already exists), reported
//     with cargo's stderr verbatim
func (r *ExecRunner) NewProject(ctx context.Context, dir, name string, kind Kind) error {
	if _, err := exec.LookPath(r.cargo); err != nil {
		return errors.Wrap(err, "cargo not found on PATH")
	}

	cmd := exec.CommandContext(ctx, r.cargo, "new", name, kind.cargoFlag())
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errors.Errorf("cargo new failed: %s", strings.TrimSpace(stderr.String()))
		}

		return errors.Wrap(err, "failed to run cargo new")
	}

	return nil
}

// Version returns the output of `cargo --version`, used by the doctor
// command to report the ambient toolchain.
func (r *ExecRunner) Version(ctx context.Context) (string, error) {
	path, err := exec.LookPath(r.cargo)
	if err != nil {
		return "", errors.Wrap(err, "cargo not found on PATH")
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", errors.Wrap(err, "failed to run cargo --version")
	}

	return strings.TrimSpace(string(out)), nil
}
