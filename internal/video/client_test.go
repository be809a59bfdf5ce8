// AngelaMos | 2026
// client_test.go

package video

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", 5*time.Second, srv.URL)
}

func TestFirstVideoURLReturnsWatchLink(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "leaf rust disease treatment", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("maxResults"))
		fmt.Fprint(w, `{"items": [{"id": {"videoId": "abc123"}}]}`)
	})

	got := client.FirstVideoURL(context.Background(), "leaf rust disease treatment")
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", got)
}

func TestFirstVideoURLNoResults(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	})

	got := client.FirstVideoURL(context.Background(), "obscure query")
	assert.Equal(t, "No relevant video found.", got)
}

func TestFirstVideoURLUpstreamFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	got := client.FirstVideoURL(context.Background(), "anything")
	assert.Contains(t, got, "Error fetching video:")
}
