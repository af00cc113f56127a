package lyrics

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bayaz-archive/bayaz/internal/catalog"
)

// Ticket identifies one load request. Tickets increase monotonically; only
// the most recently issued ticket is current.
type Ticket uint64

// Result is the outcome of a single load.
type Result struct {
	Ticket Ticket
	Song   catalog.SongSummary
	Doc    Document
	Style  Style
	Err    error
}

// Loader fetches and parses lyrics on demand. Nothing is cached; every load
// goes to the fetcher.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
	latest  atomic.Uint64
}

// NewLoader builds a Loader. A nil logger disables logging.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Begin issues a new ticket, making every earlier ticket stale.
func (l *Loader) Begin() Ticket {
	return Ticket(l.latest.Add(1))
}

// Current reports whether t is the latest ticket issued.
func (l *Loader) Current(t Ticket) bool {
	return uint64(t) == l.latest.Load()
}

// Load fetches the lyrics for song and parses them. Failures are logged and
// returned in Result.Err.
func (l *Loader) Load(ctx context.Context, t Ticket, song catalog.SongSummary) Result {
	res := Result{Ticket: t, Song: song, Style: StyleFor(song.Lang)}
	if l.fetcher == nil {
		res.Err = errors.New("no lyrics source configured")
		l.logger.Error("lyrics load failed", zap.String("song", song.Name), zap.Error(res.Err))
		return res
	}

	raw, err := l.fetcher.Fetch(ctx, song.LyricsRef)
	if err != nil {
		res.Err = fmt.Errorf("fetch lyrics for %q: %w", song.Name, err)
		l.logger.Error("lyrics load failed",
			zap.String("song", song.Name),
			zap.String("ref", song.LyricsRef),
			zap.Uint64("ticket", uint64(t)),
			zap.Bool("not_found", errors.Is(err, ErrNotFound)),
			zap.Error(err),
		)
		return res
	}

	res.Doc = Parse(raw)
	l.logger.Debug("lyrics loaded",
		zap.String("song", song.Name),
		zap.Uint64("ticket", uint64(t)),
		zap.Int("lines", len(res.Doc.Lines)),
	)
	return res
}
