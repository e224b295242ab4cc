/*
Package filter removes vulnerabilities from a report that cannot apply to a
binary of a given container format; for example, Windows-only advisories are
not reported for ELF binaries.
*/
package filter

import (
	"fmt"

	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/report"
)

// ReportByBinaryType filters the report in place, retaining (in their
// original order) only the vulnerabilities that can affect a binary of the
// given container format, then re-derives the count and found summary fields.
// A report whose count disagrees with its list on entry indicates a bug in
// the matching step and panics.
func ReportByBinaryType(format binary.Format, r *report.Report) {
	reportByBinaryType(format, r, &appleOSs)
}

func reportByBinaryType(format binary.Format, r *report.Report, apple *ApplePlatforms) {
	vulns := &r.Vulnerabilities
	if vulns.Count != len(vulns.List) {
		panic(fmt.Sprintf("internal logic error: report claims %d vulnerabilities but lists %d", vulns.Count, len(vulns.List)))
	}

	kept := vulns.List[:0]
	for _, v := range vulns.List {
		if advisoryApplies(format, v.Affected, apple) {
			kept = append(kept, v)
		}
	}

	vulns.List = kept
	vulns.Count = len(kept)
	vulns.Found = len(kept) != 0
	// TODO: also filter warnings by applicability
}
