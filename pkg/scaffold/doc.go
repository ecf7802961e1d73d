// Package scaffold generates new Rust crate directories with profile-based extras.
//
// # Scaffolding
//
// The package delegates base project creation to `cargo new` and then layers
// metadata and auxiliary files on top of the result. A scaffolded crate has
// this layout:
//
//	<crate-name>/
//	├── Cargo.toml                  # patched: authors, license, repository
//	├── src/main.rs | src/lib.rs    # from cargo new, untouched
//	├── README.md
//	├── LICENSE
//	├── CHANGELOG.md
//	├── tests/basic.rs
//	├── benches/bench.rs
//	└── .github/workflows/ci.yml
//
// # Components
//
//   - Renderer: produces the content of each auxiliary file from embedded
//     templates, substituting profile values with documented fallbacks.
//     Rendering never fails on missing profile fields.
//   - CargoRunner: capability interface around `cargo new`, so tests can
//     substitute a fake. ExecRunner is the production implementation.
//   - Scaffolder: orchestrates the run. Base-creation failure is fatal and
//     aborts everything; every later step is best effort. Per-file outcomes
//     are collected into a Report rather than short-circuiting, and a
//     partially scaffolded crate is never rolled back.
//
// # License Resolution
//
// The effective license is resolved as: --license override, then the
// profile's default license, then "MIT". This order is the one binding
// invariant of the package and both the manifest and the LICENSE file always
// agree on the result.
//
// # Usage
//
//	s := scaffold.New(scaffold.ScaffolderParams{Profile: prof})
//
//	report, err := s.Scaffold(ctx, scaffold.Request{
//		Name: "shortid-rs",
//		Kind: scaffold.Binary,
//	})
//	if err != nil {
//		log.Fatal(err) // cargo missing or cargo new failed
//	}
//
//	for _, f := range report.Failed() {
//		slog.Warn("Could not write file", "path", f.Path, "err", f.Err)
//	}
package scaffold
