package report

import (
	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/pkg"
)

// Vulnerability is a single advisory matched against a package found in the
// audited binary.
type Vulnerability struct {
	Advisory advisory.Metadata  `json:"advisory"`
	Package  pkg.Package        `json:"package"`
	Versions advisory.Versions  `json:"versions"`
	Affected *advisory.Affected `json:"affected,omitempty"`
}

// VulnerabilityList is the vulnerabilities section of a report. Count and
// Found are derived from List and must stay in sync with it: Count equals
// len(List) and Found equals Count != 0.
type VulnerabilityList struct {
	Found bool            `json:"found"`
	Count int             `json:"count"`
	List  []Vulnerability `json:"list"`
}

// WarningKind classifies a non-fatal finding attached to a report.
type WarningKind string

const (
	WarningUnparseableVersion WarningKind = "unparseable-version"
	WarningBadAdvisory        WarningKind = "bad-advisory"
)

// Warning is a problem encountered while matching that did not stop the audit.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
	Package pkg.Package `json:"package"`
}

// Report is the result of auditing one binary against the advisory database.
type Report struct {
	Vulnerabilities VulnerabilityList `json:"vulnerabilities"`
	Warnings        []Warning         `json:"warnings,omitempty"`
}

// New assembles a report, deriving the summary fields from the given
// vulnerability list.
func New(vulnerabilities []Vulnerability, warnings []Warning) Report {
	return Report{
		Vulnerabilities: VulnerabilityList{
			Found: len(vulnerabilities) != 0,
			Count: len(vulnerabilities),
			List:  vulnerabilities,
		},
		Warnings: warnings,
	}
}
