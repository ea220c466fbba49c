// Package cache stores scrubbed chapter content on disk keyed by the
// SHA-256 of the original content, so unchanged chapters skip the
// tokenize/scrub/render round trip on rebuilds. Entries are msgpack
// encoded and written atomically; a schema bump invalidates everything.
package cache
