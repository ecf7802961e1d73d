package scaffold_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cratesmith/cratesmith/pkg/cmd/testutil"
	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/cratesmith/cratesmith/pkg/scaffold"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newScaffolder(t *testing.T, p *profile.Profile) (*scaffold.Scaffolder, string) {
	t.Helper()

	dir := t.TempDir()
	s := scaffold.New(scaffold.ScaffolderParams{
		Dir:      dir,
		Profile:  p,
		Renderer: scaffold.NewRenderer(scaffold.RendererParams{Profile: p, Now: fixedClock}),
		Runner:   &testutil.FakeRunner{},
	})

	return s, dir
}

func TestScaffold_BinaryCrate(t *testing.T) {
	s, dir := newScaffolder(t, testProfile())

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "shortid-rs", Kind: scaffold.Binary})
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Equal(t, "MIT", report.License)

	crateDir := filepath.Join(dir, "shortid-rs")
	require.Equal(t, crateDir, report.Dir)
	testutil.RequireValidCrate(t, crateDir, filepath.Join("src", "main.rs"))
}

func TestScaffold_LibraryCrate(t *testing.T) {
	s, dir := newScaffolder(t, testProfile())

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "idgen"})
	require.NoError(t, err)
	require.True(t, report.OK())

	testutil.RequireValidCrate(t, filepath.Join(dir, "idgen"), filepath.Join("src", "lib.rs"))
}

// The end-to-end metadata scenario: profile-driven authors, license, and
// repository all land in the manifest and the generated files agree.
func TestScaffold_ProfileMetadata(t *testing.T) {
	p := &profile.Profile{Name: "JD Plumbing", GitHub: "JDPlumbing", License: "MIT"}
	s, dir := newScaffolder(t, p)

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "shortid-rs", Kind: scaffold.Binary})
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Equal(t, "MIT", report.License)

	crateDir := filepath.Join(dir, "shortid-rs")

	testutil.RequireFileExists(t, filepath.Join(crateDir, "Cargo.toml"),
		testutil.RequireFileContains(t, `authors = ["JD Plumbing"]`),
		testutil.RequireFileContains(t, `license = "MIT"`),
		testutil.RequireFileContains(t, `repository = "https://github.com/JDPlumbing/shortid-rs"`),
	)

	testutil.RequireFileExists(t, filepath.Join(crateDir, "README.md"),
		testutil.RequireFileContains(t, "shortid-rs"),
		testutil.RequireFileContains(t, "JDPlumbing"),
	)

	testutil.RequireFileExists(t, filepath.Join(crateDir, "LICENSE"),
		testutil.RequireFileContains(t, "2026"),
		testutil.RequireFileContains(t, "JD Plumbing"),
	)
}

func TestScaffold_LicenseOverrideWinsEverywhere(t *testing.T) {
	s, dir := newScaffolder(t, testProfile()) // profile default is MIT

	req := scaffold.Request{Name: "idgen", License: "Apache-2.0"}
	report, err := s.Scaffold(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Apache-2.0", report.License)

	crateDir := filepath.Join(dir, "idgen")
	testutil.RequireFileExists(t, filepath.Join(crateDir, "Cargo.toml"),
		testutil.RequireFileContains(t, `license = "Apache-2.0"`),
		testutil.RequireFileNotContains(t, `license = "MIT"`),
	)
	testutil.RequireFileExists(t, filepath.Join(crateDir, "LICENSE"),
		testutil.RequireFileContains(t, "Apache License"),
	)
}

func TestScaffold_InvalidNameIsFatal(t *testing.T) {
	runner := &testutil.FakeRunner{}
	s := scaffold.New(scaffold.ScaffolderParams{Dir: t.TempDir(), Runner: runner})

	_, err := s.Scaffold(context.Background(), scaffold.Request{Name: "bad name"})
	require.Error(t, err)
	require.Empty(t, runner.Calls, "cargo must not be invoked for an invalid name")
}

func TestScaffold_BaseCreationFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	s := scaffold.New(scaffold.ScaffolderParams{
		Dir:    dir,
		Runner: &testutil.FakeRunner{Err: errors.New("cargo new failed: destination exists")},
	})

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "idgen"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "destination exists")
	require.Nil(t, report)

	// Nothing may be written when base creation fails
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestScaffold_PartialWriteFailureIsReported(t *testing.T) {
	s, dir := newScaffolder(t, testProfile())

	// A file where the .github directory should go makes that one write
	// fail while everything else proceeds.
	crateDir := filepath.Join(dir, "idgen")
	require.NoError(t, os.MkdirAll(crateDir, consts.ModeDir))
	require.NoError(t, os.WriteFile(filepath.Join(crateDir, ".github"), []byte("in the way"), consts.ModeFile))

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "idgen"})
	require.NoError(t, err, "auxiliary failures are not fatal")
	require.False(t, report.OK())

	failed := report.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, ".github/workflows/ci.yml", failed[0].Path)
	require.Error(t, failed[0].Err)

	// All other auxiliary files still exist with correct content
	testutil.RequireFileExists(t, filepath.Join(crateDir, "README.md"))
	testutil.RequireFileExists(t, filepath.Join(crateDir, "LICENSE"))
	testutil.RequireFileExists(t, filepath.Join(crateDir, "CHANGELOG.md"))
	testutil.RequireFileExists(t, filepath.Join(crateDir, "tests", "basic.rs"))
	testutil.RequireFileExists(t, filepath.Join(crateDir, "benches", "bench.rs"))
}

func TestScaffold_OverwritesExistingAuxiliaryFiles(t *testing.T) {
	s, dir := newScaffolder(t, testProfile())

	crateDir := filepath.Join(dir, "idgen")
	require.NoError(t, os.MkdirAll(crateDir, consts.ModeDir))
	require.NoError(t, os.WriteFile(filepath.Join(crateDir, "README.md"), []byte("stale"), consts.ModeFile))

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "idgen"})
	require.NoError(t, err)
	require.True(t, report.OK())

	// Last write wins, no merging
	testutil.RequireFileExists(t, filepath.Join(crateDir, "README.md"),
		testutil.RequireFileContains(t, "# idgen"),
		testutil.RequireFileNotContains(t, "stale"),
	)
}

func TestScaffold_ReportListsEveryStep(t *testing.T) {
	s, _ := newScaffolder(t, testProfile())

	report, err := s.Scaffold(context.Background(), scaffold.Request{Name: "idgen"})
	require.NoError(t, err)

	paths := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		paths = append(paths, f.Path)
	}

	require.Equal(t, []string{
		"Cargo.toml",
		"README.md",
		"LICENSE",
		"CHANGELOG.md",
		".github/workflows/ci.yml",
		"tests/basic.rs",
		"benches/bench.rs",
	}, paths)
}
