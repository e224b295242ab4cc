package filter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binaudit/binaudit/binaudit/platform"
)

func TestApplePlatformsMembership(t *testing.T) {
	var apple ApplePlatforms

	assert.True(t, apple.Contains(platform.MacOS))
	assert.True(t, apple.Contains(platform.IOS))
	assert.True(t, apple.Contains(platform.TvOS))
	assert.True(t, apple.Contains(platform.WatchOS))

	assert.False(t, apple.Contains(platform.Linux))
	assert.False(t, apple.Contains(platform.Windows))
	assert.False(t, apple.Contains(platform.FreeBSD))
	assert.False(t, apple.Contains(platform.OS("darwin-ng")))
}

func TestApplePlatformsCaching(t *testing.T) {
	var apple ApplePlatforms

	first := apple.Set()
	second := apple.Set()

	assert.Same(t, first, second)
	assert.True(t, first.IsEqual(second))
}

func TestApplePlatformsConcurrentFirstAccess(t *testing.T) {
	var apple ApplePlatforms

	var wg sync.WaitGroup
	results := make([]bool, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = apple.Contains(platform.MacOS)
		}(i)
	}
	wg.Wait()

	for _, contains := range results {
		assert.True(t, contains)
	}
}
