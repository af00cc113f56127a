package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
)

// CatalogService defines the read-only catalog service operations.
// This interface is implemented by *Client and can be used for testing.
type CatalogService interface {
	FetchSongs(ctx context.Context) (*catalog.Catalog, error)
	FetchTrending(ctx context.Context) (Trending, error)
	FetchLyrics(ctx context.Context, ref string) (string, error)
}

// Ensure Client implements CatalogService at compile time.
var _ CatalogService = (*Client)(nil)

// Client talks to the catalog service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

const (
	defaultUserAgent = "bayaz/0.1"
	requestTimeout   = 5 * time.Second
	maxLyricsBytes   = 1 << 20

	// Scrolling through songs with the panel open fires a request per
	// selection; keep bursts polite.
	requestsPerSecond = 8
	requestBurst      = 4
)

// NewClient builds a Client for the service at apiURL.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		userAgent: defaultUserAgent,
	}, nil
}

// FetchSongs retrieves the full song list and builds a Catalog from it.
func (c *Client) FetchSongs(ctx context.Context) (*catalog.Catalog, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SongListResponse
	if err := c.getJSON(ctx, &url.URL{Path: "/api/songs"}, &payload); err != nil {
		return nil, err
	}
	return catalog.FromRecords(payload.Songs)
}

// FetchTrending retrieves the top songs and top writers concurrently.
func (c *Client) FetchTrending(ctx context.Context) (Trending, error) {
	if c == nil {
		return Trending{}, fmt.Errorf("client is nil")
	}
	var songs TopSongsResponse
	var writers TopWritersResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.getJSON(gctx, &url.URL{Path: "/api/trending/songs"}, &songs); err != nil {
			return fmt.Errorf("top songs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.getJSON(gctx, &url.URL{Path: "/api/trending/writers"}, &writers); err != nil {
			return fmt.Errorf("top writers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Trending{}, err
	}
	return Trending{Songs: songs.Songs, Writers: writers.Writers}.normalize(), nil
}

// FetchLyrics retrieves the raw lyric text for ref. A 404 is reported as
// lyrics.ErrNotFound, as are the dot refs "." and "..".
func (c *Client) FetchLyrics(ctx context.Context, ref string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	ref = strings.TrimSpace(ref)
	switch ref {
	case "":
		return "", fmt.Errorf("%w: empty reference", lyrics.ErrNotFound)
	case ".", "..":
		return "", fmt.Errorf("%w: %s", lyrics.ErrNotFound, ref)
	}
	// The ref is one escaped segment so it cannot leave /api/lyrics/.
	rel := &url.URL{
		Path:    "/api/lyrics/" + ref,
		RawPath: "/api/lyrics/" + url.PathEscape(ref),
	}
	resp, err := c.get(ctx, rel, "text/plain")
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s", lyrics.ErrNotFound, ref)
		}
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLyricsBytes))
	if err != nil {
		return "", fmt.Errorf("read lyrics: %w", err)
	}
	return string(data), nil
}

// Lyrics adapts the client to the lyrics.Fetcher interface.
func (c *Client) Lyrics() lyrics.Fetcher {
	return lyrics.FetcherFunc(c.FetchLyrics)
}

func (c *Client) getJSON(ctx context.Context, rel *url.URL, dest any) error {
	resp, err := c.get(ctx, rel, "application/json")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rel *url.URL, accept string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, &StatusError{Path: rel.Path, Code: resp.StatusCode}
	}
	return resp, nil
}

// StatusError reports an error status returned by the service.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
