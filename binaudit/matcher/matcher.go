package matcher

import (
	"fmt"

	hashiVer "github.com/hashicorp/go-version"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/pkg"
	"github.com/binaudit/binaudit/binaudit/report"
	"github.com/binaudit/binaudit/internal/log"
)

// Provider is the advisory lookup interface the matcher consumes; the db
// store satisfies it.
type Provider interface {
	GetByPackage(name string) []advisory.Advisory
}

// FindVulnerabilities matches each package against the advisory provider and
// assembles a report. Packages with unparseable versions and advisories with
// bad version requirements become report warnings rather than failures, so a
// single bad record never aborts an audit.
func FindVulnerabilities(provider Provider, packages ...pkg.Package) report.Report {
	var vulnerabilities []report.Vulnerability
	var warnings []report.Warning

	for _, p := range packages {
		advisories := provider.GetByPackage(p.Name)
		if len(advisories) == 0 {
			continue
		}

		ver, err := hashiVer.NewVersion(p.Version)
		if err != nil {
			log.Warnf("unable to parse version for package %q: %v", p.Name, err)
			warnings = append(warnings, report.Warning{
				Kind:    report.WarningUnparseableVersion,
				Message: fmt.Sprintf("unable to parse version %q: %v", p.Version, err),
				Package: p,
			})
			continue
		}

		for _, adv := range advisories {
			vulnerable, err := adv.Versions.IsVulnerable(ver)
			if err != nil {
				log.Warnf("skipping advisory %q for package %q: %v", adv.Metadata.ID, p.Name, err)
				warnings = append(warnings, report.Warning{
					Kind:    report.WarningBadAdvisory,
					Message: fmt.Sprintf("advisory %s: %v", adv.Metadata.ID, err),
					Package: p,
				})
				continue
			}
			if !vulnerable {
				continue
			}

			log.Debugf("package %q matches advisory %q", p.Name, adv.Metadata.ID)
			vulnerabilities = append(vulnerabilities, report.Vulnerability{
				Advisory: adv.Metadata,
				Package:  p,
				Versions: adv.Versions,
				Affected: adv.Affected,
			})
		}
	}

	return report.New(vulnerabilities, warnings)
}
