package platform

// OS identifies the operating system component of a target platform. Values
// are opaque tokens sourced from the platform registry; comparison and
// ordering follow the underlying string, so an OS can be used as a map key or
// collected into a set. New operating systems can appear in advisory data
// without a corresponding constant here.
type OS string

const (
	Android    OS = "android"
	Dragonfly  OS = "dragonfly"
	Emscripten OS = "emscripten"
	FreeBSD    OS = "freebsd"
	Fuchsia    OS = "fuchsia"
	Haiku      OS = "haiku"
	Illumos    OS = "illumos"
	IOS        OS = "ios"
	Linux      OS = "linux"
	MacOS      OS = "macos"
	NetBSD     OS = "netbsd"
	None       OS = "none"
	OpenBSD    OS = "openbsd"
	Redox      OS = "redox"
	Solaris    OS = "solaris"
	TvOS       OS = "tvos"
	Wasi       OS = "wasi"
	WatchOS    OS = "watchos"
	Windows    OS = "windows"
)

func (o OS) String() string {
	return string(o)
}
