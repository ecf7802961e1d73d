package scaffold

import (
	"bytes"
	"embed"
	"path"
	"text/template"
	"time"

	"github.com/cratesmith/cratesmith/pkg/profile"
	"github.com/cratesmith/cratesmith/pkg/utils"
)

var (
	//go:embed embed
	embedFS embed.FS

	templates = template.Must(template.ParseFS(embedFS, "embed/*.tmpl", "embed/licenses/*.tmpl"))
)

type (
	// GeneratedFile is one auxiliary file produced by the Renderer: a path
	// relative to the crate root and its full content. Files carry no
	// identity beyond their path; existing files are overwritten
	// (last-write-wins, no merging).
	GeneratedFile struct {
		RelPath string
		Content []byte
	}

	// Renderer produces the auxiliary file set for a scaffolding request.
	// Rendering is pure: no filesystem access beyond the embedded templates,
	// and no failure modes for missing profile fields.
	Renderer struct {
		profile *profile.Profile
		now     func() time.Time
	}

	// RendererParams configures a Renderer.
	RendererParams struct {
		// Profile supplies author/license/repository metadata. May be nil,
		// which behaves like an entirely empty profile.
		Profile *profile.Profile

		// Now overrides the clock used for copyright years. Defaults to
		// time.Now; tests pass a fixed time.
		Now func() time.Time
	}

	// templateData is the substitution context shared by all templates.
	templateData struct {
		Crate      string
		CrateIdent string
		License    string
		Year       int
		Holder     string
		GitHubUser string
		HasGitHub  bool
	}
)

// NewRenderer creates a Renderer for the given profile.
func NewRenderer(params RendererParams) *Renderer {
	p := params.Profile
	if p == nil {
		p = &profile.Profile{}
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Renderer{profile: p, now: now}
}

// Render produces the full auxiliary file set for the request: README,
// LICENSE, CHANGELOG, CI workflow, and test/bench stubs. Output order is
// fixed for determinism but carries no meaning; the files are independent.
//
// Missing profile fields never fail a render; they substitute empty strings
// or the documented fallbacks ("your-github", "Unknown").
func (r *Renderer) Render(req Request) ([]GeneratedFile, error) {
	data := r.data(req)

	readme, err := execute("README.md.tmpl", data)
	if err != nil {
		return nil, err
	}

	changelog, err := execute("CHANGELOG.md.tmpl", data)
	if err != nil {
		return nil, err
	}

	license, err := renderLicense(data)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{
		{RelPath: "README.md", Content: readme},
		{RelPath: "LICENSE", Content: license},
		{RelPath: "CHANGELOG.md", Content: changelog},
		{RelPath: path.Join(".github", "workflows", "ci.yml"), Content: static("ci.yml")},
		{RelPath: path.Join("tests", "basic.rs"), Content: static("basic.rs")},
		{RelPath: path.Join("benches", "bench.rs"), Content: static("bench.rs")},
	}, nil
}

func (r *Renderer) data(req Request) templateData {
	return templateData{
		Crate:      req.Name,
		CrateIdent: utils.CrateIdent(req.Name),
		License:    req.EffectiveLicense(r.profile),
		Year:       r.now().Year(),
		Holder:     r.profile.Holder(),
		GitHubUser: r.profile.GitHubUser(),
		HasGitHub:  r.profile.GitHub != "",
	}
}

// execute renders a named embedded template into a byte slice.
func execute(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// static returns the content of a non-templated embedded file. The files are
// compiled in, so a read can only fail on a programming error.
func static(name string) []byte {
	data, err := embedFS.ReadFile("embed/" + name)
	if err != nil {
		panic(err)
	}

	return data
}
