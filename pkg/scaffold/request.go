package scaffold

import (
	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/cratesmith/cratesmith/pkg/utils"
)

type (
	// Kind selects the crate type passed to cargo new.
	Kind int

	// Request describes a single scaffolding run. It is built from CLI
	// arguments, immutable once constructed, and consumed by the Scaffolder.
	Request struct {
		// Name is the crate name; must pass utils.ValidateCrateName
		Name string

		// Kind is the crate type; defaults to Library
		Kind Kind

		// License is the optional SPDX identifier override from --license.
		// Empty means "use the profile default".
		License string
	}
)

const (
	// Library creates a library crate (cargo new --lib). The zero value, and
	// the default when neither --bin nor --lib is given.
	Library Kind = iota

	// Binary creates a binary crate (cargo new --bin)
	Binary
)

// String returns the human-readable crate kind.
func (k Kind) String() string {
	if k == Binary {
		return "binary"
	}

	return "library"
}

// cargoFlag returns the cargo new flag for the kind.
func (k Kind) cargoFlag() string {
	if k == Binary {
		return "--bin"
	}

	return "--lib"
}

// Validate checks that the request names a usable crate.
func (r Request) Validate() error {
	return utils.ValidateCrateName(r.Name)
}

// EffectiveLicense resolves the license identifier actually used for the run:
// the request override wins, then the profile default, then consts.DefaultLicense.
func (r Request) EffectiveLicense(p *profile.Profile) string {
	if r.License != "" {
		return r.License
	}

	if p != nil && p.License != "" {
		return p.License
	}

	return consts.DefaultLicense
}
