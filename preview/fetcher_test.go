package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImage(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		want    string
		wantErr error
	}{
		{
			name:   "og image wins over earlier img",
			markup: `<html><body><img src="/first.png"><meta property="og:image" content="https://cdn.example.com/og.jpg"></body></html>`,
			want:   "https://cdn.example.com/og.jpg",
		},
		{
			name:   "og image in head",
			markup: `<html><head><meta property="og:image" content="https://cdn.example.com/og.jpg"/></head><body><img src="/x.png"></body></html>`,
			want:   "https://cdn.example.com/og.jpg",
		},
		{
			name:   "first img when no og tag",
			markup: `<html><body><img src="/a.png"><img src="/b.png"></body></html>`,
			want:   "/a.png",
		},
		{
			name:   "empty og content falls back to img",
			markup: `<meta property="og:image" content=""><img src="/fallback.png">`,
			want:   "/fallback.png",
		},
		{
			name:    "first img without src yields nothing",
			markup:  `<img alt="logo"><img src="/second.png">`,
			wantErr: ErrNoPreview,
		},
		{
			name:    "neither tag",
			markup:  `<html><body><p>Nothing to see</p></body></html>`,
			wantErr: ErrNoPreview,
		},
		{
			name:    "not html at all",
			markup:  `{"json": true}`,
			wantErr: ErrNoPreview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImage(strings.NewReader(tt.markup))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_Fetch(t *testing.T) {
	userAgents := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgents <- r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><meta property="og:image" content="https://img.example.com/bike.jpg"></head></html>`))
	}))
	defer srv.Close()

	got, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL+"/product/1")

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/bike.jpg", got)
	assert.Equal(t, UserAgent, <-userAgents)
}

func TestFetcher_Fetch_ScansErrorPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<img src="/404.png">`))
	}))
	defer srv.Close()

	got, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "/404.png", got)
}

func TestFetcher_Fetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	got, err := NewFetcher(time.Second).Fetch(context.Background(), url)

	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	got, err := NewFetcher(50*time.Millisecond).Fetch(context.Background(), srv.URL)

	assert.Error(t, err)
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetcher_Fetch_RejectsNonHTTP(t *testing.T) {
	for _, raw := range []string{"a red bicycle", "ftp://example.com/x", "file:///etc/passwd", "http://"} {
		got, err := NewFetcher(time.Second).Fetch(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
		assert.Empty(t, got)
	}
}
