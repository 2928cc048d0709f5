// Package lvlscan is your in-memory toolkit for density-based clustering —
// DBSCAN over arbitrary item types or pre-indexed point sets, plus the
// neighborhood-search strategies that feed it.
//
// 🚀 What is lvlscan?
//
//	A small, focused library that brings together:
//		• dbscan: the cluster-expansion engine — breadth-first growth of
//		  density-connected clusters, keyed (any comparable item) and
//		  indexed (dense positional) entry points
//		• neighbors: pluggable neighborhood oracles — full scan, cached
//		  scan, and an eps-cell grid index for 2D points
//
// ✨ Why choose lvlscan?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Oracle-agnostic – the core never computes a distance; plug in any
//     range-query strategy that honors the Oracle contract
//
// Under the hood, everything is organized under two subpackages:
//
//	dbscan/    — Fit, FitFunc, FitIndex: the trainer and expansion engine
//	neighbors/ — distance functions and Oracle constructors
//
// Quick ASCII example:
//
//	    ●●        ●●
//	    ●●   ✦    ●●
//
//	two dense 4-point groups and one outlier: DBSCAN yields two clusters
//	of four plus a single noise point.
//
// Dive into README.md and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/lvlscan
package lvlscan
