// Package profile loads the persisted user profile used to auto-fill crate metadata.
//
// The profile lives in a fixed, well-known TOML file in the user's home
// directory (~/.cargo-me.toml). It is owned and written by a companion tool;
// cratesmith treats it as a read-only external collaborator and never creates,
// migrates, or modifies it.
//
// # Degraded Operation
//
// Scaffolding must succeed even when no profile is configured, just with
// blanker metadata. Loading therefore never fails hard:
//
//   - Missing file: an empty Profile is returned with a nil error.
//   - Unreadable or malformed file: an empty Profile is returned along with a
//     non-nil error the caller may surface as a warning.
//
// Every field is optional. Accessors like Author, Holder, and RepoURL encode
// the documented fallbacks so rendering code never has to branch on missing
// fields:
//
//	p, err := profile.Load()
//	if err != nil {
//		slog.Warn("Using empty profile", "err", err)
//	}
//
//	fmt.Println(p.Author())              // "Jane Doe <jane@example.com>" or ""
//	fmt.Println(p.Holder())              // organization, else name, else "Unknown"
//	fmt.Println(p.RepoURL("shortid-rs")) // "https://github.com/janedoe/shortid-rs" or ""
package profile
