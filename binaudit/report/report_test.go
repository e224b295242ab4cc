package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/pkg"
)

func TestNewDerivesSummaryFields(t *testing.T) {
	vulns := []Vulnerability{
		{
			Advisory: advisory.Metadata{ID: "BINSEC-2021-0001", Package: "smallvec"},
			Package:  pkg.Package{Name: "smallvec", Version: "1.6.0"},
		},
		{
			Advisory: advisory.Metadata{ID: "BINSEC-2021-0002", Package: "openssl"},
			Package:  pkg.Package{Name: "openssl", Version: "0.10.0"},
		},
	}

	r := New(vulns, nil)

	assert.Equal(t, 2, r.Vulnerabilities.Count)
	assert.True(t, r.Vulnerabilities.Found)
	assert.Len(t, r.Vulnerabilities.List, 2)
}

func TestNewEmpty(t *testing.T) {
	r := New(nil, nil)

	assert.Equal(t, 0, r.Vulnerabilities.Count)
	assert.False(t, r.Vulnerabilities.Found)
	assert.Empty(t, r.Vulnerabilities.List)
}
