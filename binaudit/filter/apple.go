package filter

import (
	"sync"

	"github.com/scylladb/go-set/strset"

	"github.com/binaudit/binaudit/binaudit/platform"
)

// applePlatformPattern selects every registry target with an Apple vendor.
const applePlatformPattern = "*apple*"

// ApplePlatforms lazily computes and caches the set of Apple-family operating
// systems. The zero value is ready to use: the first call to Set queries the
// platform registry once, and every later call (from any goroutine) observes
// the same set. The set is never mutated after initialization.
type ApplePlatforms struct {
	once sync.Once
	set  *strset.Set
}

// Set returns the cached set of Apple-family OS identifiers.
func (a *ApplePlatforms) Set() *strset.Set {
	a.once.Do(func() {
		req := platform.MustParseReq(applePlatformPattern)
		a.set = strset.New()
		for _, p := range req.MatchingPlatforms() {
			a.set.Add(string(p.OS))
		}
	})
	return a.set
}

// Contains indicates if the given OS is an Apple-family operating system.
func (a *ApplePlatforms) Contains(os platform.OS) bool {
	return a.Set().Has(string(os))
}

// appleOSs is the process-wide cache backing the package-level functions.
var appleOSs ApplePlatforms
