package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CratePaths lists every path a fully scaffolded crate contains, relative to
// the crate root. The src file is appended by RequireValidCrate based on kind.
var CratePaths = []string{
	"Cargo.toml",
	"README.md",
	"LICENSE",
	"CHANGELOG.md",
	filepath.Join("tests", "basic.rs"),
	filepath.Join("benches", "bench.rs"),
	filepath.Join(".github", "workflows", "ci.yml"),
}

// RequireValidCrate asserts that a scaffolded crate contains exactly the
// expected file set, all non-empty. srcFile is "src/main.rs" or "src/lib.rs"
// depending on the requested kind.
func RequireValidCrate(t *testing.T, crateDir, srcFile string) {
	t.Helper()

	for _, rel := range append([]string{srcFile}, CratePaths...) {
		path := filepath.Join(crateDir, rel)
		require.FileExists(t, path, "crate should contain %s", rel)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size(), "%s should be non-empty", rel)
	}
}

// RequireFileExists asserts that a file exists and optionally checks its content.
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		contentStr := string(content)
		for _, check := range checks {
			check(contentStr)
		}
	}
}

// RequireFileContains returns a check function that verifies file contains text.
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireFileNotContains returns a check function that verifies file doesn't contain text.
func RequireFileNotContains(t *testing.T, unexpected string) func(string) {
	return func(content string) {
		require.NotContains(t, content, unexpected, "File should not contain: %s", unexpected)
	}
}
