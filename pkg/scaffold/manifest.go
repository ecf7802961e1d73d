package scaffold

import (
	"fmt"
	"os"
	"strings"

	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/pkg/errors"
)

// Metadata holds the manifest fields cratesmith owns. Empty Authors or
// Repository means "leave that key alone"; License is always written.
type Metadata struct {
	Authors    string
	License    string
	Repository string
}

// MetadataFor derives the manifest metadata for a crate from the profile and
// the resolved license.
func MetadataFor(p *profile.Profile, crate, license string) Metadata {
	return Metadata{
		Authors:    p.Author(),
		License:    license,
		Repository: p.RepoURL(crate),
	}
}

// PatchManifest sets the authors, license, and repository keys in the
// [package] section of a Cargo.toml document, returning the patched content.
//
// The patch is deliberately line-oriented rather than a TOML round-trip: it
// must not remove, reformat, or reorder any content it does not own. Keys
// that already exist in [package] are replaced in place; missing keys are
// appended at the end of the section. Re-patching with the same metadata is
// idempotent and yields byte-identical output.
func PatchManifest(content []byte, meta Metadata) ([]byte, error) {
	lines := strings.Split(string(content), "\n")

	start, end, err := packageSection(lines)
	if err != nil {
		return nil, err
	}

	wanted := meta.lines()

	// Replace keys that already exist in [package].
	for i := start + 1; i < end; i++ {
		key := manifestKey(lines[i])
		if line, ok := wanted[key]; ok {
			lines[i] = line
			delete(wanted, key)
		}
	}

	if len(wanted) == 0 {
		return []byte(strings.Join(lines, "\n")), nil
	}

	// Append the remaining keys at the end of the section, before any blank
	// lines separating it from the next one. Fixed key order keeps the patch
	// idempotent.
	insert := end
	for insert > start+1 && strings.TrimSpace(lines[insert-1]) == "" {
		insert--
	}

	var added []string
	for _, key := range []string{"authors", "license", "repository"} {
		if line, ok := wanted[key]; ok {
			added = append(added, line)
		}
	}

	patched := make([]string, 0, len(lines)+len(added))
	patched = append(patched, lines[:insert]...)
	patched = append(patched, added...)
	patched = append(patched, lines[insert:]...)

	return []byte(strings.Join(patched, "\n")), nil
}

// PatchManifestFile applies PatchManifest to the manifest at path, writing
// the result back in place.
func PatchManifestFile(path string, meta Metadata) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read manifest: %s", path)
	}

	patched, err := PatchManifest(content, meta)
	if err != nil {
		return errors.Wrapf(err, "failed to patch manifest: %s", path)
	}

	if err := os.WriteFile(path, patched, consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write manifest: %s", path)
	}

	return nil
}

// lines returns the full key lines to write, keyed by manifest key name.
func (m Metadata) lines() map[string]string {
	wanted := map[string]string{
		"license": fmt.Sprintf("license = %q", m.License),
	}

	if m.Authors != "" {
		wanted["authors"] = fmt.Sprintf("authors = [%q]", m.Authors)
	}

	if m.Repository != "" {
		wanted["repository"] = fmt.Sprintf("repository = %q", m.Repository)
	}

	return wanted
}

// packageSection locates the [package] section, returning the index of its
// header line and the index one past its last line (the next section header,
// or len(lines)).
func packageSection(lines []string) (int, int, error) {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "[package]" {
			start = i
			break
		}
	}

	if start == -1 {
		return 0, 0, errors.New("no [package] section found")
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "[") {
			end = i
			break
		}
	}

	return start, end, nil
}

// manifestKey extracts the bare key name from a "key = value" line, or ""
// for anything else (blank lines, comments, section headers).
func manifestKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
		return ""
	}

	key, _, found := strings.Cut(trimmed, "=")
	if !found {
		return ""
	}

	return strings.TrimSpace(key)
}
