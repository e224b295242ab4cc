package filter

import (
	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/platform"
)

// AdvisoryApplies decides whether an advisory can affect a binary of the
// given container format. An advisory without an affected section, or with an
// empty OS list, is unrestricted and always applies; otherwise the OS list is
// an allow-list checked against the format.
func AdvisoryApplies(format binary.Format, affected *advisory.Affected) bool {
	return advisoryApplies(format, affected, &appleOSs)
}

func advisoryApplies(format binary.Format, affected *advisory.Affected, apple *ApplePlatforms) bool {
	if affected == nil {
		return true
	}
	if len(affected.OS) == 0 {
		return true
	}
	return anyOSRunsBinary(format, affected.OS, apple)
}

func anyOSRunsBinary(format binary.Format, osList []platform.OS, apple *ApplePlatforms) bool {
	switch format.Kind {
	case binary.PE:
		for _, os := range osList {
			if os == platform.Windows {
				return true
			}
		}
		return false
	case binary.Macho:
		for _, os := range osList {
			if apple.Contains(os) {
				return true
			}
		}
		return false
	case binary.Elf32, binary.Elf64:
		// the registry does not record which OS families use the ELF
		// container, so assume any OS other than Windows or an Apple OS does.
		// This over-reports rather than hiding a real vulnerability.
		for _, os := range osList {
			if os != platform.Windows && !apple.Contains(os) {
				return true
			}
		}
		return false
	}
	// an unclassifiable binary never suppresses an advisory
	return true
}
