package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cratesmith/cratesmith/pkg/consts"
	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/pkg/errors"
)

type (
	// Scaffolder orchestrates a scaffolding run: base creation via cargo,
	// manifest patching, and auxiliary file generation.
	Scaffolder struct {
		dir      string
		profile  *profile.Profile
		renderer *Renderer
		runner   CargoRunner
	}

	// ScaffolderParams configures a Scaffolder. Only Profile is commonly set;
	// the rest default to production implementations.
	ScaffolderParams struct {
		// Dir is the directory the crate is created under (default ".")
		Dir string

		// Profile supplies metadata; nil behaves like an empty profile
		Profile *profile.Profile

		// Renderer overrides the default renderer built from Profile
		Renderer *Renderer

		// Runner overrides the production cargo invocation; tests supply fakes
		Runner CargoRunner
	}

	// FileResult records the outcome of one post-creation step. Err is nil
	// on success.
	FileResult struct {
		Path string
		Err  error
	}

	// Report summarizes a scaffolding run that got past base creation.
	// Failed entries are warnings, not fatal: the base crate is always left
	// intact and is never rolled back.
	Report struct {
		// Dir is the created crate root
		Dir string

		// License is the effective license identifier used for the run
		License string

		// Files holds the per-file outcome for the manifest patch and every
		// auxiliary file, in write order
		Files []FileResult
	}
)

// New creates a Scaffolder, filling in production defaults for any params
// left unset.
func New(params ScaffolderParams) *Scaffolder {
	p := params.Profile
	if p == nil {
		p = &profile.Profile{}
	}

	renderer := params.Renderer
	if renderer == nil {
		renderer = NewRenderer(RendererParams{Profile: p})
	}

	runner := params.Runner
	if runner == nil {
		runner = NewExecRunner()
	}

	dir := params.Dir
	if dir == "" {
		dir = "."
	}

	return &Scaffolder{
		dir:      dir,
		profile:  p,
		renderer: renderer,
		runner:   runner,
	}
}

// Scaffold performs a full scaffolding run for the request.
//
// A non-nil error means nothing useful was created: the request was invalid,
// or cargo new failed (in which case its message is returned verbatim).
// Once base creation succeeds the run always returns a Report; individual
// manifest or file failures are recorded there and later steps still run.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.runner.NewProject(ctx, s.dir, req.Name, req.Kind); err != nil {
		return nil, err
	}

	root := filepath.Join(s.dir, req.Name)
	license := req.EffectiveLicense(s.profile)

	report := &Report{Dir: root, License: license}

	// Patch the manifest cargo just created. Failure is a warning like any
	// other: the base crate stays usable either way.
	manifestPath := filepath.Join(root, "Cargo.toml")
	report.Files = append(report.Files, FileResult{
		Path: "Cargo.toml",
		Err:  PatchManifestFile(manifestPath, MetadataFor(s.profile, req.Name, license)),
	})

	files, err := s.renderer.Render(req)
	if err != nil {
		// Template execution over embedded templates; reaching this means a
		// broken build, but the base crate is still reported as created.
		report.Files = append(report.Files, FileResult{Path: "<render>", Err: err})
		return report, nil
	}

	for _, f := range files {
		report.Files = append(report.Files, FileResult{
			Path: f.RelPath,
			Err:  writeFile(root, f),
		})
	}

	return report, nil
}

// writeFile writes one generated file under root, creating parent
// directories as needed. Existing files are overwritten.
func writeFile(root string, f GeneratedFile) error {
	target := filepath.Join(root, filepath.FromSlash(f.RelPath))

	if err := os.MkdirAll(filepath.Dir(target), consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", f.RelPath)
	}

	if err := os.WriteFile(target, f.Content, consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write %s", f.RelPath)
	}

	return nil
}

// Failed returns the subset of file results that errored.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}

	return failed
}

// OK reports whether every post-creation step succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}
