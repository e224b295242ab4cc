package advisory

import (
	"testing"

	hashiVer "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionsIsVulnerable(t *testing.T) {
	tests := []struct {
		name       string
		versions   Versions
		version    string
		vulnerable bool
	}{
		{
			name:       "below patched range is vulnerable",
			versions:   Versions{Patched: []string{">= 1.6.1"}},
			version:    "1.6.0",
			vulnerable: true,
		},
		{
			name:       "patched version is not vulnerable",
			versions:   Versions{Patched: []string{">= 1.6.1"}},
			version:    "1.6.1",
			vulnerable: false,
		},
		{
			name:       "backport range counts as patched",
			versions:   Versions{Patched: []string{">= 0.6.14, < 1.0.0", ">= 1.6.1"}},
			version:    "0.6.14",
			vulnerable: false,
		},
		{
			name:       "between backport and fix is vulnerable",
			versions:   Versions{Patched: []string{">= 0.6.14, < 1.0.0", ">= 1.6.1"}},
			version:    "1.2.0",
			vulnerable: true,
		},
		{
			name:       "unaffected range is not vulnerable",
			versions:   Versions{Patched: []string{">= 2.0.0"}, Unaffected: []string{"< 0.5.0"}},
			version:    "0.4.9",
			vulnerable: false,
		},
		{
			name:       "no requirements means every version is vulnerable",
			versions:   Versions{},
			version:    "3.1.4",
			vulnerable: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ver, err := hashiVer.NewVersion(test.version)
			require.NoError(t, err)

			actual, err := test.versions.IsVulnerable(ver)
			require.NoError(t, err)
			assert.Equal(t, test.vulnerable, actual)
		})
	}
}

func TestVersionsIsVulnerableBadRequirement(t *testing.T) {
	ver, err := hashiVer.NewVersion("1.0.0")
	require.NoError(t, err)

	_, err = Versions{Patched: []string{"not-a-requirement >="}}.IsVulnerable(ver)
	assert.Error(t, err)
}

func TestSeverityAtLeast(t *testing.T) {
	assert.True(t, SeverityCritical.AtLeast(SeverityHigh))
	assert.True(t, SeverityHigh.AtLeast(SeverityHigh))
	assert.False(t, SeverityMedium.AtLeast(SeverityHigh))
	assert.True(t, SeverityLow.AtLeast(SeverityUnknown))
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, ParseSeverity(" HIGH "))
	assert.Equal(t, SeverityMedium, ParseSeverity("moderate"))
	assert.Equal(t, SeverityUnknown, ParseSeverity(""))
	assert.Equal(t, SeverityUnknown, ParseSeverity("bogus"))
}
