// SPDX-License-Identifier: MIT

// Package builder produces synthetic datasets for forcelayout: node and link
// records shaped like a data provider's output, ready for simulation.Update.
//
// Components:
//
//   - Orchestration:
//     – Constructor:   func(*Dataset, builderConfig) error; appends records.
//     – BuildDataset:  resolves options once and runs constructors in order.
//     – InCluster:     runs a constructor with every new node in one cluster.
//   - Topologies (one cluster each, cluster id from InCluster, default 0):
//     – Path, Cycle, Star, Complete, RandomSparse, Isolated.
//   - Clustered graphs:
//     – Clustered:     k clusters of equal size with intra- and inter-cluster
//     link probabilities (a stochastic block model).
//     – HitTestTwins:  adds a LinkHitTest twin for every visible link.
//   - Node names (IDFn): DefaultIDFn, SymbolNumberIDFn, ExcelColumnIDFn.
//   - Link values (ValueFn): DefaultValueFn, ConstantValueFn,
//     UniformValueFn, SignedValueFn.
//
// Naming:
//
//	Every constructor names new nodes idFn(k) where k is the number of nodes
//	already in the dataset, so composed constructors never collide.
//
// Determinism:
//
//	Same options, seed and constructor order ⇒ identical datasets.
//	Stochastic constructors need WithSeed or WithRand (ErrNeedRandSource).
//
// Errors:
//
//	ErrTooFewVertices      - size parameter below its minimum.
//	ErrInvalidProbability  - probability outside [0,1].
//	ErrNeedRandSource      - stochastic constructor without an RNG.
//	ErrConstructFailed     - nil constructor or dataset.
package builder
