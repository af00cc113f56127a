// Package remote provides an HTTP client for the lyrics catalog service.
//
// # Overview
//
// The catalog service owns songs, writers, likes, and ranking. This package
// only reads from it: the song list that seeds the browser, the trending
// rankings, and the raw lyric text behind a lyrics reference.
//
// # API Endpoints
//
//   - GET /api/songs             {"songs": [{name, writer, singer, lang, lyricsFile}]}
//   - GET /api/trending/songs    {"songs": [{song_id, title, likes}]}
//   - GET /api/trending/writers  {"writers": [{writer_id, name, total_likes}]}
//   - GET /api/lyrics/{ref}      text/plain lyric body
//
// Every request carries a User-Agent and a fresh X-Request-ID so service logs
// can be correlated with the client's log file.
//
// # Error Handling
//
// Status codes >= 400 surface as *StatusError. A 404 from the lyrics endpoint
// is reported as lyrics.ErrNotFound so the browser can tell a missing song
// apart from an unreachable service. Network errors and timeouts (5 seconds
// per request) are wrapped and returned unchanged.
//
// # Trending
//
// FetchTrending issues both trending requests concurrently with errgroup and
// fails if either fails. The service returns ranked rows; the client keeps the
// top five of each, most liked first.
package remote
