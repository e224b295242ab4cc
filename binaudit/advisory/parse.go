package advisory

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Parse reads a single TOML advisory document.
func Parse(reader io.Reader) (Advisory, error) {
	var adv Advisory
	if _, err := toml.NewDecoder(reader).Decode(&adv); err != nil {
		return Advisory{}, fmt.Errorf("unable to parse advisory: %w", err)
	}

	if adv.Metadata.ID == "" {
		return Advisory{}, fmt.Errorf("advisory has no id")
	}
	if adv.Metadata.Package == "" {
		return Advisory{}, fmt.Errorf("advisory %q has no package", adv.Metadata.ID)
	}

	// severity values in the database are free-form; normalize on load
	adv.Metadata.Severity = ParseSeverity(string(adv.Metadata.Severity))

	return adv, nil
}
