// Package testutil provides shared helpers for cratesmith tests: a fake
// cargo runner that writes a minimal crate layout without shelling out, and
// assertion helpers for scaffolded crates.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/cratesmith/cratesmith/pkg/scaffold"
)

// FakeRunner implements scaffold.CargoRunner without invoking cargo. It
// reproduces the part of `cargo new` the scaffolder depends on: the crate
// root, a minimal Cargo.toml, and the src file for the requested kind.
type FakeRunner struct {
	// Err, when set, is returned verbatim without touching the filesystem,
	// simulating a failed cargo new.
	Err error

	// Calls records the crate names requested, in order.
	Calls []string
}

// NewProject writes the base crate layout under dir.
func (r *FakeRunner) NewProject(ctx context.Context, dir, name string, kind scaffold.Kind) error {
	if r.Err != nil {
		return r.Err
	}

	r.Calls = append(r.Calls, name)

	root := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(root, "src"), consts.ModeDir); err != nil {
		return err
	}

	manifest := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n", name)
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte(manifest), consts.ModeFile); err != nil {
		return err
	}

	src, content := "lib.rs", "pub fn add(left: u64, right: u64) -> u64 {\n    left + right\n}\n"
	if kind == scaffold.Binary {
		src, content = "main.rs", "fn main() {\n    println!(\"Hello, world!\");\n}\n"
	}

	return os.WriteFile(filepath.Join(root, "src", src), []byte(content), consts.ModeFile)
}

// Version reports a canned toolchain version, or Err when set.
func (r *FakeRunner) Version(ctx context.Context) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}

	return "cargo 1.80.0 (fake)", nil
}
