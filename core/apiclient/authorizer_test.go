package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibraconnect/appkit/core/apiclient"
	"github.com/kibraconnect/appkit/core/credentials"
)

func TestAuthorizer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newServer := func(t *testing.T, headers chan<- http.Header) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("attaches bearer token when session is stored", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		srv := newServer(t, headers)

		store := credentials.NewMemoryStore()
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken:  "the-access-token",
			RefreshToken: "r",
			UserID:       "1",
		}))

		hc := &http.Client{Transport: apiclient.NewAuthorizer(store)}
		resp, err := hc.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		got := <-headers
		assert.Equal(t, "Bearer the-access-token", got.Get("Authorization"))
		assert.NotEmpty(t, got.Get("X-Request-ID"))
	})

	t.Run("sends request unauthenticated without session", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		srv := newServer(t, headers)

		hc := &http.Client{Transport: apiclient.NewAuthorizer(credentials.NewMemoryStore())}
		resp, err := hc.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		got := <-headers
		assert.Empty(t, got.Get("Authorization"))
	})

	t.Run("does not mutate the caller's request", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		srv := newServer(t, headers)

		store := credentials.NewMemoryStore()
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken: "a", RefreshToken: "r", UserID: "1",
		}))

		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)

		hc := &http.Client{Transport: apiclient.NewAuthorizer(store)}
		resp, err := hc.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		<-headers

		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Empty(t, req.Header.Get("X-Request-ID"))
	})

	t.Run("reads store at request time", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 2)
		srv := newServer(t, headers)

		store := credentials.NewMemoryStore()
		hc := &http.Client{Transport: apiclient.NewAuthorizer(store)}

		resp, err := hc.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Empty(t, (<-headers).Get("Authorization"))

		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken: "fresh", RefreshToken: "r", UserID: "1",
		}))

		resp, err = hc.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, "Bearer fresh", (<-headers).Get("Authorization"))
	})

	t.Run("safe for concurrent in-flight requests", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		store := credentials.NewMemoryStore()
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken: "a", RefreshToken: "r", UserID: "1",
		}))
		hc := &http.Client{Transport: apiclient.NewAuthorizer(store)}

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := hc.Get(srv.URL)
				if err == nil {
					resp.Body.Close()
				}
				// Writes race the reads on purpose.
				_ = store.Save(ctx, credentials.Session{
					AccessToken: "b", RefreshToken: "r", UserID: "1",
				})
				_ = store.Clear(ctx)
			}()
		}
		wg.Wait()
	})
}
