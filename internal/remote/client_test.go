package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bayaz-archive/bayaz/internal/catalog"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
)

func TestParseBaseURL_Normalizes(t *testing.T) {
	if _, err := parseBaseURL("  "); err == nil {
		t.Fatal("parseBaseURL(blank) returned nil error")
	}

	u, err := parseBaseURL("lyrics.example.org:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "lyrics.example.org:8080" {
		t.Fatalf("parseBaseURL = %q", u.String())
	}

	u, err = parseBaseURL("https://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *sync.Map) {
	t.Helper()
	headers := &sync.Map{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers.Store(r.URL.EscapedPath(), r.Header.Clone())
		switch r.URL.Path {
		case "/api/songs":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(SongListResponse{Songs: []catalog.Record{
				{Name: "Zeb", Writer: "Amin", Singer: "Gul", Lang: "urdu", LyricsFile: "zeb.txt"},
				{Name: "Asha", Writer: "Noor", Singer: "Gul", Lang: "english", LyricsFile: "asha.txt"},
			}})
		case "/api/trending/songs":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(TopSongsResponse{Songs: []TopSong{
				{SongID: 1, Title: "a", Likes: 3},
				{SongID: 2, Title: "b", Likes: 9},
				{SongID: 3, Title: "c", Likes: 1},
				{SongID: 4, Title: "d", Likes: 7},
				{SongID: 5, Title: "e", Likes: 5},
				{SongID: 6, Title: "f", Likes: 2},
			}})
		case "/api/trending/writers":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(TopWritersResponse{Writers: []TopWriter{
				{WriterID: 1, Name: "Noor", TotalLikes: 4},
				{WriterID: 2, Name: "Amin", TotalLikes: 12},
			}})
		case "/api/lyrics/zeb.txt":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("Line1\n\nLine2"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server, headers
}

func TestClient_FetchSongs(t *testing.T) {
	t.Parallel()
	server, headers := newTestServer(t)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	cat, err := c.FetchSongs(ctx)
	if err != nil {
		t.Fatalf("FetchSongs returned error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("catalog len = %d, want 2", cat.Len())
	}
	first, _ := cat.At(0)
	if first.Name != "Asha" || first.Lang != catalog.LangEnglish {
		t.Fatalf("first song = %+v, want Asha/english", first)
	}

	raw, ok := headers.Load("/api/songs")
	if !ok {
		t.Fatal("no request recorded for /api/songs")
	}
	h := raw.(http.Header)
	if h.Get("User-Agent") != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", h.Get("User-Agent"), defaultUserAgent)
	}
	if _, err := uuid.Parse(h.Get("X-Request-ID")); err != nil {
		t.Fatalf("X-Request-ID %q is not a uuid: %v", h.Get("X-Request-ID"), err)
	}
	if h.Get("Accept") != "application/json" {
		t.Fatalf("Accept = %q", h.Get("Accept"))
	}
}

func TestClient_FetchTrendingOrdersAndTrims(t *testing.T) {
	t.Parallel()
	server, _ := newTestServer(t)
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	trending, err := c.FetchTrending(context.Background())
	if err != nil {
		t.Fatalf("FetchTrending returned error: %v", err)
	}
	if len(trending.Songs) != TrendingLimit {
		t.Fatalf("songs = %d, want %d", len(trending.Songs), TrendingLimit)
	}
	wantLikes := []int{9, 7, 5, 3, 2}
	for i, song := range trending.Songs {
		if song.Likes != wantLikes[i] {
			t.Fatalf("songs[%d].Likes = %d, want %d", i, song.Likes, wantLikes[i])
		}
	}
	if len(trending.Writers) != 2 || trending.Writers[0].Name != "Amin" {
		t.Fatalf("writers = %+v, want Amin first", trending.Writers)
	}
}

func TestClient_FetchLyrics(t *testing.T) {
	t.Parallel()
	server, headers := newTestServer(t)
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	text, err := c.Lyrics().Fetch(ctx, "zeb.txt")
	if err != nil {
		t.Fatalf("FetchLyrics returned error: %v", err)
	}
	if text != "Line1\n\nLine2" {
		t.Fatalf("FetchLyrics = %q", text)
	}
	raw, _ := headers.Load("/api/lyrics/zeb.txt")
	if accept := raw.(http.Header).Get("Accept"); accept != "text/plain" {
		t.Fatalf("Accept = %q, want text/plain", accept)
	}

	if _, err := c.FetchLyrics(ctx, "missing.txt"); !errors.Is(err, lyrics.ErrNotFound) {
		t.Fatalf("FetchLyrics(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := c.FetchLyrics(ctx, ""); !errors.Is(err, lyrics.ErrNotFound) {
		t.Fatalf("FetchLyrics(blank) error = %v, want ErrNotFound", err)
	}
}

func TestClient_FetchLyricsStaysInNamespace(t *testing.T) {
	t.Parallel()
	server, headers := newTestServer(t)
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		ref      string
		wantPath string
	}{
		{ref: "../songs", wantPath: "/api/lyrics/..%2Fsongs"},
		{ref: "../trending/songs", wantPath: "/api/lyrics/..%2Ftrending%2Fsongs"},
		{ref: "nested/zeb.txt", wantPath: "/api/lyrics/nested%2Fzeb.txt"},
		{ref: ".", wantPath: ""},
		{ref: "..", wantPath: ""},
	}
	for _, tt := range tests {
		text, err := c.FetchLyrics(ctx, tt.ref)
		if !errors.Is(err, lyrics.ErrNotFound) {
			t.Fatalf("FetchLyrics(%q) = %q, %v; want ErrNotFound", tt.ref, text, err)
		}
		if tt.wantPath == "" {
			continue
		}
		if _, ok := headers.Load(tt.wantPath); !ok {
			t.Fatalf("FetchLyrics(%q) did not request %s", tt.ref, tt.wantPath)
		}
	}
	if _, ok := headers.Load("/api/songs"); ok {
		t.Fatal("a lyrics ref reached /api/songs")
	}
	if _, ok := headers.Load("/api/trending/songs"); ok {
		t.Fatal("a lyrics ref reached /api/trending/songs")
	}
}

func TestClient_ServerErrors(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchSongs(ctx)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("FetchSongs error = %v, want StatusError 500", err)
	}
	if errors.Is(err, lyrics.ErrNotFound) {
		t.Fatal("500 must not look like a missing resource")
	}
	if _, err := c.FetchTrending(ctx); err == nil {
		t.Fatal("FetchTrending returned nil error")
	}
	if _, err := c.FetchLyrics(ctx, "zeb.txt"); err == nil || errors.Is(err, lyrics.ErrNotFound) {
		t.Fatalf("FetchLyrics error = %v, want non-NotFound failure", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchSongs(context.Background()); err == nil {
		t.Fatal("nil client FetchSongs returned nil error")
	}
	if _, err := c.FetchTrending(context.Background()); err == nil {
		t.Fatal("nil client FetchTrending returned nil error")
	}
	if _, err := c.FetchLyrics(context.Background(), "x"); err == nil {
		t.Fatal("nil client FetchLyrics returned nil error")
	}
}

func TestClient_CancelledContextSkipsRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.FetchLyrics(ctx, "zeb.txt"); err == nil {
		t.Fatal("FetchLyrics with cancelled context returned nil error")
	}
	if n := hits.Load(); n != 0 {
		t.Fatalf("server saw %d requests, want 0", n)
	}
}
