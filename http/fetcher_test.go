package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dochttp "github.com/fwojciec/docchat/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := dochttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, body, "hello")
	})

	t.Run("sends a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.UserAgent()
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		f := dochttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := dochttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("respects the configured timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer srv.Close()

		f := dochttp.NewFetcher(dochttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
	})

	t.Run("decodes non-UTF-8 pages", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte{'c', 'a', 'f', 0xe9}) // "café" in latin-1
		}))
		defer srv.Close()

		f := dochttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "café", body)
	})
}
