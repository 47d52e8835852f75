// Package model defines the non-local feature-function capability
// interface spec.md §4.3/§9 names (C6): "Stateful non-local scoring
// producing an opaque state blob per hyperedge." A real model (an n-gram
// LM, a tree RNN, a penalty feature) implements Model directly; this
// package also ships Mock, a simple fixed-size-state reference
// implementation good for tests and for composing multiple scoring
// signals in one model via Chain.
package model
