package scaffold

// licenseTemplates maps recognized SPDX identifiers to their embedded full
// license text templates. Identifiers outside this map fall back to a minimal
// copyright notice naming the license, rather than failing the run.
var licenseTemplates = map[string]string{
	"MIT":          "MIT.tmpl",
	"Apache-2.0":   "Apache-2.0.tmpl",
	"BSD-3-Clause": "BSD-3-Clause.tmpl",
}

// renderLicense produces the LICENSE file body for the effective license in
// data. Recognized identifiers get the full license text with the current
// year and copyright holder substituted in; anything else gets the fallback
// notice.
func renderLicense(data templateData) ([]byte, error) {
	name, ok := licenseTemplates[data.License]
	if !ok {
		name = "notice.tmpl"
	}

	return execute(name, data)
}

// KnownLicenses returns the SPDX identifiers that render as full license
// texts. Used by the CLI for help output.
func KnownLicenses() []string {
	return []string{"Apache-2.0", "BSD-3-Clause", "MIT"}
}
