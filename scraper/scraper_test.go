package scraper_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Deaquay/shiftcodes/scraper"
)

func TestScraper_RefreshSuccess(t *testing.T) {
	s := scraper.New([]string{"true"}, ".", 10*time.Second)

	assert.True(t, s.Refresh())
}

func TestScraper_RefreshNonZeroExit(t *testing.T) {
	s := scraper.New([]string{"false"}, ".", 10*time.Second)

	assert.False(t, s.Refresh())
}

func TestScraper_RefreshCommandNotFound(t *testing.T) {
	s := scraper.New([]string{"definitely-not-a-real-command-xyz"}, ".", 10*time.Second)

	assert.False(t, s.Refresh())
}

func TestScraper_RefreshNoCommand(t *testing.T) {
	s := scraper.New(nil, ".", 10*time.Second)

	assert.False(t, s.Refresh())
}

func TestScraper_RefreshTimeout(t *testing.T) {
	s := scraper.New([]string{"sleep", "5"}, ".", 100*time.Millisecond)

	start := time.Now()
	ok := s.Refresh()

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestScraper_ConcurrentRefreshesShareOneRun(t *testing.T) {
	// both callers ride the same singleflight execution and agree on the result
	s := scraper.New([]string{"sleep", "0.2"}, ".", 10*time.Second)

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Refresh()
		}(i)
	}
	wg.Wait()

	assert.True(t, results[0])
	assert.True(t, results[1])
}
