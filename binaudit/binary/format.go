package binary

// Kind represents the executable container format of a compiled artifact.
type Kind string

const (
	// UnknownFormat is the classification for artifacts with an unrecognized header.
	UnknownFormat Kind = "unknown"

	PE    Kind = "pe"
	Macho Kind = "mach-o"
	Elf32 Kind = "elf32"
	Elf64 Kind = "elf64"
)

// ByteOrder captures the endianness declared by an ELF header.
type ByteOrder string

const (
	UnknownByteOrder ByteOrder = "unknown"
	LittleEndian     ByteOrder = "little-endian"
	BigEndian        ByteOrder = "big-endian"
)

// Format is the classification of a single binary artifact. ByteOrder is
// populated for ELF kinds only and carries no weight in advisory
// applicability decisions.
type Format struct {
	Kind      Kind
	ByteOrder ByteOrder
}

func (f Format) String() string {
	switch f.Kind {
	case Elf32, Elf64:
		return string(f.Kind) + " (" + string(f.ByteOrder) + ")"
	}
	return string(f.Kind)
}
