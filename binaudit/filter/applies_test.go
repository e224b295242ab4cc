package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binaudit/binaudit/binaudit/advisory"
	"github.com/binaudit/binaudit/binaudit/binary"
	"github.com/binaudit/binaudit/binaudit/platform"
)

var allFormats = []binary.Format{
	{Kind: binary.PE},
	{Kind: binary.Macho},
	{Kind: binary.Elf32, ByteOrder: binary.LittleEndian},
	{Kind: binary.Elf64, ByteOrder: binary.LittleEndian},
	{Kind: binary.UnknownFormat},
}

func TestAdvisoryAppliesUnconstrained(t *testing.T) {
	for _, format := range allFormats {
		t.Run(string(format.Kind), func(t *testing.T) {
			assert.True(t, AdvisoryApplies(format, nil), "nil affected must always apply")
			assert.True(t, AdvisoryApplies(format, &advisory.Affected{}), "empty OS list must always apply")
			assert.True(t, AdvisoryApplies(format, &advisory.Affected{Arch: []platform.Arch{platform.X86_64}}),
				"arch-only restriction must not constrain OS applicability")
		})
	}
}

func TestAdvisoryApplies(t *testing.T) {
	tests := []struct {
		name     string
		osList   []platform.OS
		expected map[binary.Kind]bool
	}{
		{
			name:   "windows only",
			osList: []platform.OS{platform.Windows},
			expected: map[binary.Kind]bool{
				binary.PE:            true,
				binary.Macho:         false,
				binary.Elf32:         false,
				binary.Elf64:         false,
				binary.UnknownFormat: true,
			},
		},
		{
			name:   "macos and linux",
			osList: []platform.OS{platform.MacOS, platform.Linux},
			expected: map[binary.Kind]bool{
				binary.PE:            false,
				binary.Macho:         true,
				binary.Elf32:         true,
				binary.Elf64:         true,
				binary.UnknownFormat: true,
			},
		},
		{
			name:   "ios only",
			osList: []platform.OS{platform.IOS},
			expected: map[binary.Kind]bool{
				binary.PE:            false,
				binary.Macho:         true,
				binary.Elf32:         false,
				binary.Elf64:         false,
				binary.UnknownFormat: true,
			},
		},
		{
			name:   "linux and freebsd",
			osList: []platform.OS{platform.Linux, platform.FreeBSD},
			expected: map[binary.Kind]bool{
				binary.PE:            false,
				binary.Macho:         false,
				binary.Elf32:         true,
				binary.Elf64:         true,
				binary.UnknownFormat: true,
			},
		},
		{
			name:   "windows and macos but nothing elf-like",
			osList: []platform.OS{platform.Windows, platform.MacOS},
			expected: map[binary.Kind]bool{
				binary.PE:            true,
				binary.Macho:         true,
				binary.Elf32:         false,
				binary.Elf64:         false,
				binary.UnknownFormat: true,
			},
		},
		{
			name:   "os unknown to the registry",
			osList: []platform.OS{platform.OS("plan9")},
			expected: map[binary.Kind]bool{
				binary.PE:            false,
				binary.Macho:         false,
				binary.Elf32:         true,
				binary.Elf64:         true,
				binary.UnknownFormat: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, format := range allFormats {
				affected := &advisory.Affected{OS: test.osList}
				assert.Equalf(t, test.expected[format.Kind], AdvisoryApplies(format, affected),
					"unexpected result for format %q", format.Kind)
			}
		})
	}
}

func TestAdvisoryAppliesIgnoresByteOrder(t *testing.T) {
	affected := &advisory.Affected{OS: []platform.OS{platform.Linux}}

	for _, kind := range []binary.Kind{binary.Elf32, binary.Elf64} {
		le := binary.Format{Kind: kind, ByteOrder: binary.LittleEndian}
		be := binary.Format{Kind: kind, ByteOrder: binary.BigEndian}
		assert.Equal(t, AdvisoryApplies(le, affected), AdvisoryApplies(be, affected))
	}
}

func TestAdvisoryAppliesWithFreshAppleCache(t *testing.T) {
	// a fresh, uninitialized cache must behave identically to the
	// process-wide one
	var apple ApplePlatforms
	affected := &advisory.Affected{OS: []platform.OS{platform.MacOS}}

	assert.True(t, advisoryApplies(binary.Format{Kind: binary.Macho}, affected, &apple))
	assert.False(t, advisoryApplies(binary.Format{Kind: binary.Elf64}, affected, &apple))
}
