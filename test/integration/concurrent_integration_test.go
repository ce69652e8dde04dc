//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/recipe-service/internal/adapters/seeds"
	"github.com/jsamuelsen/recipe-service/internal/platform/config"
)

type listedPage struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
	TotalItems int `json:"totalItems"`
}

func submit(h *harness, title string) (string, error) {
	body := fmt.Sprintf(`{"title":%q,"category":"Lunch","time":"12"}`, title)

	resp, err := http.Post(h.url("/api/v1/recipes"), "application/json", strings.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}

	return created.ID, nil
}

func list(h *harness, query string) (listedPage, error) {
	var page listedPage

	resp, err := http.Get(h.url("/api/v1/recipes" + query))
	if err != nil {
		return page, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return page, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return page, json.NewDecoder(resp.Body).Decode(&page)
}

// TestConcurrent_SubmissionsAndQueries interleaves writers and readers and
// checks that every submission lands once with a unique id.
func TestConcurrent_SubmissionsAndQueries(t *testing.T) {
	h := newHarness(t, harnessOptions{}, seeds.Sample{})

	const writers = 20
	const readers = 20

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ids      = make(map[string]bool, writers)
		failures atomic.Int32
	)

	for i := range writers {
		wg.Go(func() {
			id, err := submit(h, fmt.Sprintf("Concurrent %02d", i))
			if err != nil {
				failures.Add(1)
				return
			}

			mu.Lock()
			ids[id] = true
			mu.Unlock()
		})
	}

	for range readers {
		wg.Go(func() {
			page, err := list(h, "?sort=time&page_size=50")
			if err != nil {
				failures.Add(1)
				return
			}

			// A snapshot never tears: the sample recipes are always present.
			if page.TotalItems < 5 || page.TotalItems > 5+writers {
				failures.Add(1)
			}
		})
	}

	wg.Wait()

	require.Equal(t, int32(0), failures.Load())
	assert.Len(t, ids, writers, "ids are unique")
	assert.Equal(t, 5+writers, h.catalog.Len(context.Background()))

	page, err := list(h, "?category=Lunch&page_size=50")
	require.NoError(t, err)
	assert.Equal(t, 1+writers, page.TotalItems)
}

// TestConcurrent_NewestFirst checks submissions are prepended in commit order.
func TestConcurrent_NewestFirst(t *testing.T) {
	h := newHarness(t, harnessOptions{}, seeds.Sample{})

	first, err := submit(h, "First")
	require.NoError(t, err)

	second, err := submit(h, "Second")
	require.NoError(t, err)

	// Equal times keep catalog order under the stable sort.
	page, err := list(h, "?category=Lunch&sort=time")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []string{second, first}, []string{page.Items[0].ID, page.Items[1].ID})
}

// TestConcurrent_RateLimitAdmitsBurst fires a concurrent burst at a limited API
// and checks that exactly the bucket size is admitted.
func TestConcurrent_RateLimitAdmitsBurst(t *testing.T) {
	const burst = 5

	h := newHarness(t, harnessOptions{rateLimit: &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.01,
		Burst:             burst,
	}}, seeds.Sample{})

	var admitted, limited atomic.Int32

	var wg sync.WaitGroup
	for range 3 * burst {
		wg.Go(func() {
			resp, err := http.Get(h.url("/api/v1/categories"))
			if err != nil {
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				admitted.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		})
	}

	wg.Wait()

	assert.Equal(t, int32(burst), admitted.Load())
	assert.Equal(t, int32(2*burst), limited.Load())
}
