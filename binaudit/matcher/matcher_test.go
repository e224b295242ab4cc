package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/pkg"
	"github.com/binaudit/binaudit/binaudit/report"
)

type mapProvider map[string][]advisory.Advisory

func (m mapProvider) GetByPackage(name string) []advisory.Advisory {
	return m[name]
}

func testProvider() mapProvider {
	return mapProvider{
		"smallvec": {
			{
				Metadata: advisory.Metadata{ID: "BINSEC-2021-0008", Package: "smallvec", Severity: advisory.SeverityHigh},
				Versions: advisory.Versions{Patched: []string{">= 1.6.1"}},
			},
		},
		"openssl": {
			{
				Metadata: advisory.Metadata{ID: "BINSEC-2022-0014", Package: "openssl", Severity: advisory.SeverityCritical},
				Versions: advisory.Versions{Patched: []string{">= 0.10.48"}},
			},
			{
				Metadata: advisory.Metadata{ID: "BINSEC-2020-0002", Package: "openssl"},
				Versions: advisory.Versions{Patched: []string{">= 0.10.9"}},
			},
		},
		"corrupt": {
			{
				Metadata: advisory.Metadata{ID: "BINSEC-2019-0001", Package: "corrupt"},
				Versions: advisory.Versions{Patched: []string{"garbage >="}},
			},
		},
	}
}

func TestFindVulnerabilities(t *testing.T) {
	r := FindVulnerabilities(testProvider(),
		pkg.Package{Name: "smallvec", Version: "1.6.0"},
		pkg.Package{Name: "openssl", Version: "0.10.12"},
		pkg.Package{Name: "serde", Version: "1.0.136"},
	)

	require.Equal(t, 2, r.Vulnerabilities.Count)
	assert.True(t, r.Vulnerabilities.Found)
	assert.Empty(t, r.Warnings)

	var ids []string
	for _, v := range r.Vulnerabilities.List {
		ids = append(ids, v.Advisory.ID)
	}
	// smallvec 1.6.0 predates the fix; openssl 0.10.12 is patched against the
	// 2020 advisory but not the 2022 one
	assert.Equal(t, []string{"BINSEC-2021-0008", "BINSEC-2022-0014"}, ids)
}

func TestFindVulnerabilitiesNoMatches(t *testing.T) {
	r := FindVulnerabilities(testProvider(),
		pkg.Package{Name: "smallvec", Version: "1.8.0"},
	)

	assert.Equal(t, 0, r.Vulnerabilities.Count)
	assert.False(t, r.Vulnerabilities.Found)
}

func TestFindVulnerabilitiesUnparseableVersion(t *testing.T) {
	r := FindVulnerabilities(testProvider(),
		pkg.Package{Name: "smallvec", Version: "one-point-oh"},
	)

	assert.Equal(t, 0, r.Vulnerabilities.Count)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, report.WarningUnparseableVersion, r.Warnings[0].Kind)
}

func TestFindVulnerabilitiesBadAdvisory(t *testing.T) {
	r := FindVulnerabilities(testProvider(),
		pkg.Package{Name: "corrupt", Version: "1.0.0"},
	)

	assert.Equal(t, 0, r.Vulnerabilities.Count)
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, report.WarningBadAdvisory, r.Warnings[0].Kind)
}
