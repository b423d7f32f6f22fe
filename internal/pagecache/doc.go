// Package pagecache provides a local cache of fetched web pages keyed by URL.
//
// Scraping transcript sites is slow and rate-limit-sensitive; the cache
// amortizes repeated runs while site parsers are being developed. Each URL
// maps to one file named by the URL's digest, and freshness is judged from
// the file's modification time against a configurable window. A miss or
// stale entry triggers a fetch through the injected Fetcher; persisting the
// result is best-effort, so a read-only cache directory degrades silently
// to "no cache".
//
// Concurrent Gets of the same URL collapse to a single fetch: an
// in-process keyed mutex serializes callers and a cross-process file lock
// covers the fetch-then-persist sequence.
//
// CLI commands for inspection and management:
//
//	tvscript cache path <url>   # Print the entry path for a URL
//	tvscript cache rm <url>     # Remove one entry
//	tvscript cache clear        # Remove every entry
package pagecache
