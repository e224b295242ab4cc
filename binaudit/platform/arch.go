package platform

// Arch identifies the CPU architecture component of a target platform.
type Arch string

const (
	Aarch64 Arch = "aarch64"
	Arm     Arch = "arm"
	Mips    Arch = "mips"
	Mips64  Arch = "mips64"
	PowerPC Arch = "powerpc"
	Riscv64 Arch = "riscv64"
	S390x   Arch = "s390x"
	Sparc64 Arch = "sparc64"
	Wasm32  Arch = "wasm32"
	X86     Arch = "x86"
	X86_64  Arch = "x86_64"
)

func (a Arch) String() string {
	return string(a)
}
