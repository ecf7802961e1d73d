package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/cratesmith/cratesmith/pkg/cmd/testutil"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func testApp(command *cli.Command, buf *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: buf,
	}
}

func testNewParams(runner *testutil.FakeRunner) newParams {
	return newParams{
		Profile: &profile.Profile{
			Name:    "JD Plumbing",
			GitHub:  "JDPlumbing",
			License: "MIT",
		},
		Runner: runner,
	}
}

func TestNewCommand_RequiresName(t *testing.T) {
	command := newCmd(testNewParams(&testutil.FakeRunner{}))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(), []string{"test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one crate name argument is required")
}

func TestNewCommand_BinAndLibAreExclusive(t *testing.T) {
	command := newCmd(testNewParams(&testutil.FakeRunner{}))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(), []string{"test", "--bin", "--lib", "idgen"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}

func TestNewCommand_ScaffoldsBinaryCrate(t *testing.T) {
	tmpDir := t.TempDir()
	command := newCmd(testNewParams(&testutil.FakeRunner{}))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(),
		[]string{"test", "--bin", "--dir", tmpDir, "shortid-rs"})
	require.NoError(t, err)

	testutil.RequireValidCrate(t, filepath.Join(tmpDir, "shortid-rs"), filepath.Join("src", "main.rs"))
	require.Contains(t, buf.String(), `Scaffolded binary crate "shortid-rs" with license "MIT"`)
}

func TestNewCommand_DefaultsToLibrary(t *testing.T) {
	tmpDir := t.TempDir()
	command := newCmd(testNewParams(&testutil.FakeRunner{}))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(), []string{"test", "--dir", tmpDir, "idgen"})
	require.NoError(t, err)

	testutil.RequireValidCrate(t, filepath.Join(tmpDir, "idgen"), filepath.Join("src", "lib.rs"))
	require.Contains(t, buf.String(), "library crate")
}

func TestNewCommand_LicenseOverride(t *testing.T) {
	tmpDir := t.TempDir()
	command := newCmd(testNewParams(&testutil.FakeRunner{}))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(),
		[]string{"test", "--dir", tmpDir, "--license", "Apache-2.0", "idgen"})
	require.NoError(t, err)

	require.Contains(t, buf.String(), `with license "Apache-2.0"`)
	testutil.RequireFileExists(t, filepath.Join(tmpDir, "idgen", "Cargo.toml"),
		testutil.RequireFileContains(t, `license = "Apache-2.0"`),
	)
}

func TestNewCommand_BaseCreationFailureIsFatal(t *testing.T) {
	tmpDir := t.TempDir()
	runner := &testutil.FakeRunner{Err: errors.New("cargo new failed: destination exists")}
	command := newCmd(testNewParams(runner))

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(), []string{"test", "--dir", tmpDir, "idgen"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "destination exists")
	require.NotContains(t, buf.String(), "Scaffolded")
}

func TestNewCommand_EmptyProfileStillScaffolds(t *testing.T) {
	tmpDir := t.TempDir()
	command := newCmd(newParams{Profile: &profile.Profile{}, Runner: &testutil.FakeRunner{}})

	var buf bytes.Buffer
	err := testApp(command, &buf).Run(context.Background(), []string{"test", "--dir", tmpDir, "idgen"})
	require.NoError(t, err)

	// Hardcoded default license applies when profile and flag are both silent
	require.Contains(t, buf.String(), `with license "MIT"`)
	testutil.RequireFileExists(t, filepath.Join(tmpDir, "idgen", "Cargo.toml"),
		testutil.RequireFileContains(t, `license = "MIT"`),
		testutil.RequireFileNotContains(t, "authors ="),
	)
}
