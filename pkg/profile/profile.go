package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Profile represents the persisted user identity and preferences used to
// auto-fill generated crate metadata. All fields are optional; an entirely
// zero Profile is valid and produces blank (or fallback) metadata.
type Profile struct {
	// Name is the author's display name, used in manifest authors entries
	Name string `toml:"name,omitempty"`

	// Email is the author's email address, appended to the authors entry
	Email string `toml:"email,omitempty"`

	// GitHub is the GitHub user or organization used to derive repository URLs
	GitHub string `toml:"github,omitempty"`

	// Organization is the copyright holder for generated LICENSE files.
	// Falls back to Name when empty.
	Organization string `toml:"organization,omitempty"`

	// License is the default SPDX license identifier applied when no
	// --license override is given
	License string `toml:"license,omitempty"`

	// RepositoryBase overrides the derived GitHub URL prefix. When set,
	// repository URLs become "<RepositoryBase>/<crate>".
	RepositoryBase string `toml:"repository_base,omitempty"`
}

// Path returns the fixed location of the profile file (~/.cargo-me.toml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}

	return filepath.Join(home, consts.ProfileFileName), nil
}

// Load reads the profile from its fixed home-directory location.
//
// A missing file is not an error: scaffolding works without a configured
// profile. Any other failure (unreadable file, TOML syntax error) returns an
// empty Profile together with the error so callers can warn and proceed.
func Load() (*Profile, error) {
	path, err := Path()
	if err != nil {
		return &Profile{}, err
	}

	return LoadFile(path)
}

// LoadFile reads a profile from the given path, with the same degraded-mode
// semantics as Load.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}

		return &Profile{}, errors.Wrapf(err, "failed to open profile: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader parses a TOML profile from the provided io.Reader. Parse errors
// return an empty Profile along with the error; the profile is never partially
// populated from a malformed document.
func LoadReader(r io.Reader) (*Profile, error) {
	var p Profile
	if err := toml.NewDecoder(r).Decode(&p); err != nil {
		return &Profile{}, errors.Wrap(err, "failed to parse profile")
	}

	return &p, nil
}

// Author returns the manifest authors entry for the profile, in the
// conventional "Name <email>" form. The email is omitted when unset, and the
// result is empty when no name is configured.
func (p *Profile) Author() string {
	if p.Name == "" {
		return ""
	}

	if p.Email == "" {
		return p.Name
	}

	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

// Holder returns the copyright holder for generated LICENSE files:
// organization first, then name, then the literal "Unknown".
func (p *Profile) Holder() string {
	if p.Organization != "" {
		return p.Organization
	}

	if p.Name != "" {
		return p.Name
	}

	return "Unknown"
}

// GitHubUser returns the GitHub account for badge and attribution links,
// falling back to the literal "your-github" placeholder when unset.
func (p *Profile) GitHubUser() string {
	if p.GitHub == "" {
		return "your-github"
	}

	return p.GitHub
}

// RepoURL derives the repository URL for a crate. RepositoryBase wins when
// set; otherwise the URL is built from the GitHub field. Returns empty when
// neither is configured.
func (p *Profile) RepoURL(crate string) string {
	if p.RepositoryBase != "" {
		return strings.TrimSuffix(p.RepositoryBase, "/") + "/" + crate
	}

	if p.GitHub == "" {
		return ""
	}

	return fmt.Sprintf("https://github.com/%s/%s", p.GitHub, crate)
}
