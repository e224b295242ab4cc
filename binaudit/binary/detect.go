package binary

import (
	"encoding/binary"
	"io"
)

const (
	elfClass32 = 1
	elfClass64 = 2

	elfDataLittle = 1
	elfDataBig    = 2
)

// mach-o magic values cover 32/64-bit thin images in both byte orders plus
// universal (fat) images.
var machoMagics = []uint32{
	0xfeedface,
	0xfeedfacf,
	0xcefaedfe,
	0xcffaedfe,
	0xcafebabe,
	0xbebafeca,
}

// Detect classifies the container format of a binary from its header bytes.
// Unrecognized or truncated headers classify as UnknownFormat; detection
// never fails.
func Detect(r io.ReaderAt) Format {
	header := make([]byte, 16)
	if _, err := r.ReadAt(header, 0); err != nil {
		return Format{Kind: UnknownFormat}
	}

	if f, ok := detectElf(header); ok {
		return f
	}
	if f, ok := detectMacho(header); ok {
		return f
	}
	if f, ok := detectPE(header, r); ok {
		return f
	}
	return Format{Kind: UnknownFormat}
}

func detectElf(header []byte) (Format, bool) {
	if header[0] != 0x7f || header[1] != 'E' || header[2] != 'L' || header[3] != 'F' {
		return Format{}, false
	}

	byteOrder := UnknownByteOrder
	switch header[5] {
	case elfDataLittle:
		byteOrder = LittleEndian
	case elfDataBig:
		byteOrder = BigEndian
	}

	switch header[4] {
	case elfClass32:
		return Format{Kind: Elf32, ByteOrder: byteOrder}, true
	case elfClass64:
		return Format{Kind: Elf64, ByteOrder: byteOrder}, true
	}
	return Format{}, false
}

func detectMacho(header []byte) (Format, bool) {
	magic := binary.BigEndian.Uint32(header[:4])
	for _, candidate := range machoMagics {
		if magic == candidate {
			return Format{Kind: Macho}, true
		}
	}
	return Format{}, false
}

func detectPE(header []byte, r io.ReaderAt) (Format, bool) {
	if header[0] != 'M' || header[1] != 'Z' {
		return Format{}, false
	}

	// the DOS stub points at the PE signature via e_lfanew at offset 0x3c
	var offsetBytes [4]byte
	if _, err := r.ReadAt(offsetBytes[:], 0x3c); err != nil {
		return Format{}, false
	}
	peOffset := int64(binary.LittleEndian.Uint32(offsetBytes[:]))

	var signature [4]byte
	if _, err := r.ReadAt(signature[:], peOffset); err != nil {
		return Format{}, false
	}
	if signature != [4]byte{'P', 'E', 0, 0} {
		return Format{}, false
	}
	return Format{Kind: PE}, true
}
