package advisory

import (
	"fmt"

	hashiVer "github.com/hashicorp/go-version"

	"github.com/binaudit/binaudit/binaudit/platform"
)

// Advisory is a single security advisory for one package, as stored in the
// advisory database.
type Advisory struct {
	Metadata Metadata  `toml:"advisory"`
	Versions Versions  `toml:"versions"`
	Affected *Affected `toml:"affected"`
}

// Metadata carries the descriptive fields of an advisory.
type Metadata struct {
	ID          string   `toml:"id" json:"id"`
	Package     string   `toml:"package" json:"package"`
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description,omitempty"`
	Date        string   `toml:"date" json:"date,omitempty"`
	Aliases     []string `toml:"aliases" json:"aliases,omitempty"`
	URL         string   `toml:"url" json:"url,omitempty"`
	Severity    Severity `toml:"severity" json:"severity"`
}

// Affected narrows an advisory to a subset of platforms. An absent Affected
// section, or empty lists within it, mean the advisory is unrestricted: the
// lists are allow-lists, never deny-lists.
type Affected struct {
	Arch []platform.Arch `toml:"arch" json:"arch,omitempty"`
	OS   []platform.OS   `toml:"os" json:"os,omitempty"`
}

// Versions holds the version requirements that bound an advisory: a package
// version is vulnerable unless it satisfies a patched or unaffected
// requirement. Requirement strings follow constraint syntax such as
// ">= 0.9.3" or ">= 1.0.0, < 1.2.4".
type Versions struct {
	Patched    []string `toml:"patched" json:"patched"`
	Unaffected []string `toml:"unaffected" json:"unaffected,omitempty"`
}

// IsVulnerable indicates if the given package version falls inside this
// advisory's vulnerable range.
func (v Versions) IsVulnerable(ver *hashiVer.Version) (bool, error) {
	for _, requirements := range [][]string{v.Patched, v.Unaffected} {
		for _, requirement := range requirements {
			constraint, err := hashiVer.NewConstraint(requirement)
			if err != nil {
				return false, fmt.Errorf("invalid version requirement %q: %w", requirement, err)
			}
			if constraint.Check(ver) {
				return false, nil
			}
		}
	}
	return true, nil
}
