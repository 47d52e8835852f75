// Package cluster implements spec.md §4.6's Cluster component: a word-id
// to cluster-id repository loaded once from a path (text form, one
// "word cluster-id" pair per line) and cached thread-locally per
// Repository instance, the same "per-instance, not package-global" shape
// package stemmer and symbol.Vocab's sharded locking both follow for
// concurrent decoding — spec.md §5: "Stemmer/Cluster caches are
// thread-local."
package cluster
