// Package coarse implements C9, the coarse-to-fine parser: spec.md §4.4.
// Each pass computes inside/outside scores over a grammar, coarsens the
// label space via symbol.Symbol.Binarized (pass 2) or symbol.Symbol.Coarse
// (passes beyond 2), and prunes the next, finer pass's chart cells whose
// coarse posterior falls below a threshold. The final pass runs
// compose.ComposeCKYPruned under the finest grammar and, on goal failure,
// relaxes the threshold of the last grammar transition by Options.Factor
// and retries, up to Options.MaxRetries times; thresholds of earlier
// transitions are not relaxed.
package coarse
