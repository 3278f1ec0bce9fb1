// Package preview scrapes a representative image URL out of a linked web
// page. Lookups are best effort: every failure is reported as an error and
// callers are expected to treat any error as "no preview".
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	DefaultTimeout = 5 * time.Second
	UserAgent      = "Mozilla/5.0"

	maxBodyBytes = 2 << 20
)

var (
	ErrNoPreview  = errors.New("page has no preview image")
	ErrInvalidURL = errors.New("not an http(s) url")
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch performs a single GET of rawURL and returns the og:image content or,
// failing that, the src of the first <img>. The response status is ignored;
// whatever markup comes back is scanned.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	return ExtractImage(io.LimitReader(resp.Body, maxBodyBytes))
}

// ExtractImage scans the whole document: an og:image tag wins even when an
// <img> appears before it. Only the first tag of each kind is considered.
func ExtractImage(r io.Reader) (string, error) {
	var (
		ogSeen, imgSeen bool
		ogContent       string
		imgSrc          string
	)

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		tok := z.Token()
		switch tok.Data {
		case "meta":
			if !ogSeen && attr(tok, "property") == "og:image" {
				ogSeen = true
				ogContent = attr(tok, "content")
			}
		case "img":
			if !imgSeen {
				imgSeen = true
				imgSrc = attr(tok, "src")
			}
		}
		if ogSeen && ogContent != "" {
			return ogContent, nil
		}
	}

	if imgSrc != "" {
		return imgSrc, nil
	}
	return "", ErrNoPreview
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
