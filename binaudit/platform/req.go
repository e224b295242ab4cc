package platform

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Req is a platform requirement: a glob expression evaluated against target
// triple identifiers (e.g. "*apple*", "x86_64-*", "*-musl").
type Req struct {
	raw     string
	matcher glob.Glob
}

// ParseReq compiles a glob pattern into a platform requirement.
func ParseReq(pattern string) (Req, error) {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return Req{}, fmt.Errorf("invalid platform requirement %q: %w", pattern, err)
	}
	return Req{
		raw:     pattern,
		matcher: matcher,
	}, nil
}

// MustParseReq is ParseReq for compile-time constant patterns; a malformed
// pattern is a programming error, so it panics instead of returning an error.
func MustParseReq(pattern string) Req {
	req, err := ParseReq(pattern)
	if err != nil {
		panic(err)
	}
	return req
}

func (r Req) String() string {
	return r.raw
}

// Matches indicates if the given platform satisfies this requirement.
func (r Req) Matches(p Platform) bool {
	return r.matcher.Match(p.Target)
}

// MatchingPlatforms returns all registry platforms satisfying this requirement.
func (r Req) MatchingPlatforms() []Platform {
	var matches []Platform
	for _, p := range All {
		if r.Matches(p) {
			matches = append(matches, p)
		}
	}
	return matches
}
