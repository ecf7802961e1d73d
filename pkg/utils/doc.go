// Package utils provides common utility functions used throughout the cratesmith codebase.
//
// # Crate Name Utilities (cratename.go)
//
// The crate name utilities validate user-supplied crate names before they are
// handed to cargo or turned into filesystem paths. Validation mirrors cargo's
// package naming rules so that failures surface early with a clear message
// instead of as a cryptic error from the underlying tool:
//
//	if err := utils.ValidateCrateName("shortid-rs"); err != nil {
//		// name is not usable as a cargo package name
//	}
//
// The validation is intentionally conservative: names that pass here are safe
// to use both as cargo package names and as directory names on all supported
// platforms.
package utils
