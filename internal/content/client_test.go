package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL}), server
}

func TestFetch_NotConfigured(t *testing.T) {
	c := NewClient(Config{})
	assert.False(t, c.IsConfigured())

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFetch_CachesWithinWindow(t *testing.T) {
	var hits atomic.Int64
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"id":1}]`))
	})

	for i := 0; i < 3; i++ {
		body, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Tags: []string{"projects"}})
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(body))
	}

	assert.Equal(t, int64(1), hits.Load(), "repeat fetches inside the window must hit the cache")
}

func TestFetch_PrependsRESTRoot(t *testing.T) {
	var gotPath string
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/pages", FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wp/v2/pages", gotPath)
}

func TestFetch_InvalidateForcesRefetch(t *testing.T) {
	var hits atomic.Int64
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Tags: []string{"projects"}})
	require.NoError(t, err)

	c.Invalidate("projects")

	_, err = c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Tags: []string{"projects"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestFetch_InvalidateUnrelatedTagKeepsEntry(t *testing.T) {
	var hits atomic.Int64
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Tags: []string{"projects"}})
	require.NoError(t, err)

	c.Invalidate("team-members")

	_, err = c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Tags: []string{"projects"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestFetch_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int64
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Revalidate: time.Nanosecond})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{Revalidate: time.Nanosecond})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestFetch_ErrorIncludesStatusAndExcerpt(t *testing.T) {
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"rest_no_route"}`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/missing", FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404 Not Found")
	assert.Contains(t, err.Error(), "rest_no_route")
}

func TestFetch_ErrorBodyIsTruncated(t *testing.T) {
	long := strings.Repeat("x", 2000)
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(long))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), strings.Repeat("x", errorBodyExcerptLen))
	assert.NotContains(t, err.Error(), strings.Repeat("x", errorBodyExcerptLen+1))
}

func TestFetch_ErrorResponsesAreNotCached(t *testing.T) {
	var hits atomic.Int64
	c, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{})
	require.Error(t, err)

	body, err := c.Fetch(context.Background(), "/wp/v2/projects", FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestWrite_SendsBasicAuthAndSkipsCache(t *testing.T) {
	var hits atomic.Int64
	var gotUser, gotPass string
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotUser, gotPass, _ = r.BasicAuth()
		gotMethod = r.Method
		w.Write([]byte(`{"careers_openings_enabled":true}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(Config{BaseURL: server.URL, WriteUser: "editor", WritePassword: "app-pass"})

	for i := 0; i < 2; i++ {
		_, err := c.Write(context.Background(), "/sec/v1/settings/careers", http.MethodPost,
			map[string]bool{"careers_openings_enabled": true})
		require.NoError(t, err)
	}

	assert.Equal(t, "editor", gotUser)
	assert.Equal(t, "app-pass", gotPass)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, int64(2), hits.Load(), "writes must never be served from cache")
}

func TestWrite_MissingCredentials(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://cms.example.com"})

	_, err := c.Write(context.Background(), "/sec/v1/settings/careers", http.MethodPost, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing write credentials")
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://cms.example.com/"})
	assert.Equal(t, "https://cms.example.com/wp-json", c.apiRoot)
}
