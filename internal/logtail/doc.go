// Package logtail reads the tail of the bayaz log file for the in-app log
// view.
//
// Read keeps a ring buffer of the last N lines, so memory stays bounded by
// the number of lines requested rather than the size of the file. Tail
// decodes each line as a zap JSON entry; anything that does not decode is
// kept verbatim so a corrupted or hand-edited log still shows up.
//
// The lyrics loader reports failed loads only to the log. This package is how
// those failures reach the user: the logs view lists recent entries and
// highlights warnings and errors.
package logtail
