package pkg

import (
	"errors"
	"fmt"
	"io"

	"github.com/rust-secure-code/go-rustaudit"
)

// ErrNoAuditInfo indicates the binary carries no embedded dependency list,
// either because its format is unrecognized or because it was not built with
// dependency tracking enabled.
var ErrNoAuditInfo = errors.New("binary contains no embedded dependency information")

// FromBinary extracts the runtime dependency list embedded in a binary built
// with cargo-auditable. Build-only dependencies are skipped; the root crate
// itself is recorded as a runtime dependency and is included.
func FromBinary(reader io.ReaderAt) ([]Package, error) {
	info, err := rustaudit.GetDependencyInfo(reader)
	if err != nil {
		if errors.Is(err, rustaudit.ErrUnknownFileFormat) || errors.Is(err, rustaudit.ErrNoRustDepInfo) {
			return nil, fmt.Errorf("%w: %v", ErrNoAuditInfo, err)
		}
		return nil, fmt.Errorf("unable to read dependency information: %w", err)
	}

	var packages []Package
	for _, dep := range info.Packages {
		if dep.Kind != rustaudit.Runtime {
			continue
		}
		packages = append(packages, Package{
			Name:    dep.Name,
			Version: dep.Version,
			Source:  dep.Source,
			Root:    dep.Root,
		})
	}
	return packages, nil
}
