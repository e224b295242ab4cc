package platform

// Platform describes a single build target known to the registry: its
// canonical target-triple identifier plus the OS and architecture
// projections used for applicability decisions.
type Platform struct {
	Target string
	OS     OS
	Arch   Arch
}

func (p Platform) String() string {
	return p.Target
}

// All is the registry of known target platforms, keyed by target triple.
// The table mirrors the common compiler target list; it does not need to be
// exhaustive, only to cover every platform family that advisories reference.
var All = []Platform{
	{"aarch64-apple-darwin", MacOS, Aarch64},
	{"aarch64-apple-ios", IOS, Aarch64},
	{"aarch64-apple-ios-sim", IOS, Aarch64},
	{"aarch64-apple-tvos", TvOS, Aarch64},
	{"aarch64-apple-watchos-sim", WatchOS, Aarch64},
	{"aarch64-linux-android", Android, Aarch64},
	{"aarch64-pc-windows-msvc", Windows, Aarch64},
	{"aarch64-unknown-freebsd", FreeBSD, Aarch64},
	{"aarch64-unknown-fuchsia", Fuchsia, Aarch64},
	{"aarch64-unknown-linux-gnu", Linux, Aarch64},
	{"aarch64-unknown-linux-musl", Linux, Aarch64},
	{"aarch64-unknown-netbsd", NetBSD, Aarch64},
	{"aarch64-unknown-none", None, Aarch64},
	{"aarch64-unknown-openbsd", OpenBSD, Aarch64},
	{"aarch64-unknown-redox", Redox, Aarch64},
	{"arm-linux-androideabi", Android, Arm},
	{"arm-unknown-linux-gnueabi", Linux, Arm},
	{"arm-unknown-linux-musleabi", Linux, Arm},
	{"armv7-apple-ios", IOS, Arm},
	{"armv7-unknown-linux-gnueabihf", Linux, Arm},
	{"i686-apple-darwin", MacOS, X86},
	{"i686-linux-android", Android, X86},
	{"i686-pc-windows-gnu", Windows, X86},
	{"i686-pc-windows-msvc", Windows, X86},
	{"i686-unknown-freebsd", FreeBSD, X86},
	{"i686-unknown-haiku", Haiku, X86},
	{"i686-unknown-linux-gnu", Linux, X86},
	{"i686-unknown-linux-musl", Linux, X86},
	{"mips-unknown-linux-gnu", Linux, Mips},
	{"mips64-unknown-linux-gnuabi64", Linux, Mips64},
	{"powerpc-unknown-linux-gnu", Linux, PowerPC},
	{"riscv64gc-unknown-linux-gnu", Linux, Riscv64},
	{"s390x-unknown-linux-gnu", Linux, S390x},
	{"sparc64-unknown-linux-gnu", Linux, Sparc64},
	{"sparcv9-sun-solaris", Solaris, Sparc64},
	{"wasm32-unknown-emscripten", Emscripten, Wasm32},
	{"wasm32-unknown-unknown", None, Wasm32},
	{"wasm32-wasi", Wasi, Wasm32},
	{"x86_64-apple-darwin", MacOS, X86_64},
	{"x86_64-apple-ios", IOS, X86_64},
	{"x86_64-apple-tvos", TvOS, X86_64},
	{"x86_64-linux-android", Android, X86_64},
	{"x86_64-pc-solaris", Solaris, X86_64},
	{"x86_64-pc-windows-gnu", Windows, X86_64},
	{"x86_64-pc-windows-msvc", Windows, X86_64},
	{"x86_64-unknown-dragonfly", Dragonfly, X86_64},
	{"x86_64-unknown-freebsd", FreeBSD, X86_64},
	{"x86_64-unknown-fuchsia", Fuchsia, X86_64},
	{"x86_64-unknown-haiku", Haiku, X86_64},
	{"x86_64-unknown-illumos", Illumos, X86_64},
	{"x86_64-unknown-linux-gnu", Linux, X86_64},
	{"x86_64-unknown-linux-musl", Linux, X86_64},
	{"x86_64-unknown-netbsd", NetBSD, X86_64},
	{"x86_64-unknown-openbsd", OpenBSD, X86_64},
	{"x86_64-unknown-redox", Redox, X86_64},
}

// ByTarget looks up a platform by its exact target triple.
func ByTarget(target string) (Platform, bool) {
	for _, p := range All {
		if p.Target == target {
			return p, true
		}
	}
	return Platform{}, false
}
