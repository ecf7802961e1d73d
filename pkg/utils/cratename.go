package utils

import (
	"strings"

	"github.com/pkg/errors"
)

// keywords are Rust keywords that cargo rejects as package names.
var keywords = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {},
	"fn": {}, "for": {}, "if": {}, "impl": {}, "in": {}, "let": {},
	"loop": {}, "match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {},
	"ref": {}, "return": {}, "self": {}, "static": {}, "struct": {},
	"super": {}, "trait": {}, "true": {}, "type": {}, "unsafe": {},
	"use": {}, "where": {}, "while": {},
}

// ValidateCrateName checks that name is usable as a cargo package name and as
// a directory name. It enforces the subset of cargo's rules that matter before
// any filesystem mutation happens:
//
//   - non-empty
//   - first character is a letter or underscore
//   - remaining characters are letters, digits, hyphens, or underscores
//   - not a Rust keyword
//
// Examples:
//   - "shortid-rs" -> ok
//   - "_scratch" -> ok
//   - "9lives" -> error (leading digit)
//   - "my crate" -> error (space)
//   - "match" -> error (keyword)
func ValidateCrateName(name string) error {
	if name == "" {
		return errors.New("crate name must not be empty")
	}

	if _, ok := keywords[name]; ok {
		return errors.Errorf("crate name %q is a Rust keyword", name)
	}

	for i, r := range name {
		if isNameChar(r) {
			if i == 0 && r >= '0' && r <= '9' {
				return errors.Errorf("crate name %q must not start with a digit", name)
			}
			if i == 0 && r == '-' {
				return errors.Errorf("crate name %q must not start with a hyphen", name)
			}
			continue
		}

		return errors.Errorf("invalid character %q in crate name %q (allowed: letters, digits, '-', '_')", r, name)
	}

	return nil
}

// IsValidCrateName reports whether name passes ValidateCrateName.
func IsValidCrateName(name string) bool {
	return ValidateCrateName(name) == nil
}

func isNameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// CrateIdent converts a crate name to the identifier form rustc uses for it
// (hyphens become underscores). Used when generated stubs need to reference
// the crate as a Rust path.
func CrateIdent(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
