package remote

import (
	"cmp"
	"slices"

	"github.com/bayaz-archive/bayaz/internal/catalog"
)

// TrendingLimit is how many songs and writers the trending view lists.
const TrendingLimit = 5

// SongListResponse mirrors /api/songs.
type SongListResponse struct {
	Songs []catalog.Record `json:"songs"`
}

// TopSong is one row of /api/trending/songs.
type TopSong struct {
	SongID int64  `json:"song_id"`
	Title  string `json:"title"`
	Likes  int    `json:"likes"`
}

// TopWriter is one row of /api/trending/writers.
type TopWriter struct {
	WriterID   int64  `json:"writer_id"`
	Name       string `json:"name"`
	TotalLikes int    `json:"total_likes"`
}

// TopSongsResponse mirrors /api/trending/songs.
type TopSongsResponse struct {
	Songs []TopSong `json:"songs"`
}

// TopWritersResponse mirrors /api/trending/writers.
type TopWritersResponse struct {
	Writers []TopWriter `json:"writers"`
}

// Trending is the combined trending payload.
type Trending struct {
	Songs   []TopSong
	Writers []TopWriter
}

// normalize orders by likes, most liked first, and keeps the top entries.
// The service already ranks; ties keep the service's order.
func (t Trending) normalize() Trending {
	songs := slices.Clone(t.Songs)
	slices.SortStableFunc(songs, func(a, b TopSong) int { return cmp.Compare(b.Likes, a.Likes) })
	writers := slices.Clone(t.Writers)
	slices.SortStableFunc(writers, func(a, b TopWriter) int { return cmp.Compare(b.TotalLikes, a.TotalLikes) })
	if len(songs) > TrendingLimit {
		songs = songs[:TrendingLimit]
	}
	if len(writers) > TrendingLimit {
		writers = writers[:TrendingLimit]
	}
	return Trending{Songs: songs, Writers: writers}
}
