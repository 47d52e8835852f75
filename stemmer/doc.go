// Package stemmer implements spec.md §4.6's Stemmer component: word-form
// normalization variants (Upper, NFKC, and a Snowball-style passthrough)
// that memoize per-word-id results in a thread-local cache, the same
// per-instance cache shape package cluster uses (spec.md §5: "Stemmer and
// cluster caches must be reinitialized per worker; store them behind a
// thread-local owner, not a global singleton").
package stemmer
