// Package pkg provides the core libraries for swapplan swap-sequence planning.
//
// # Overview
//
// swapplan turns a requested rearrangement of labeled slots into the minimal
// ordered sequence of pairwise swaps that realizes it. The pkg directory is
// organized into five areas:
//
//  1. [perm] - The planner core (cycle-following algorithm, labels, cycles)
//  2. [plan] - Plan documents, options, the caching runner, JSON IO
//  3. [render] - Diagram output (text wire diagram, DOT, SVG, PNG, PDF)
//  4. [cache] - Plan and artifact caching (file, Redis, disabled)
//  5. [archive] - Plan history (file, MongoDB)
//
// # Quick Start
//
// Plan a permutation and render it:
//
//	import (
//	    "fmt"
//	    "github.com/swaplab/swapplan/pkg/perm"
//	    "github.com/swaplab/swapplan/pkg/render"
//	)
//
//	working := []int{0, 1, 2, 3, 4}
//	target := []int{4, 2, 0, 1, 3}
//
//	swaps, err := perm.Plan(target, working)
//	if err != nil {
//	    // INSUFFICIENT_LABELS, LENGTH_MISMATCH, DUPLICATE_LABEL or
//	    // UNKNOWN_LABEL, before any swap is produced.
//	}
//	for _, s := range swaps {
//	    fmt.Printf("swap %v and %v\n", s.A, s.B)
//	}
//
// The typical data flow through swapplan:
//
//	labels + target
//	         ↓
//	    [perm] package (validate, plan swaps)
//	         ↓
//	    [plan] package (document + stats, cache via [cache])
//	         ↓
//	    [render] package (text/DOT/SVG/PNG/PDF)
//	         ↓
//	    stdout, files, [archive], or the HTTP API
//
// # Main Packages
//
// [perm] - Generic planner over any comparable label type. Plan and
// PlanSubset emit swaps named by the original slot labels; Apply and Verify
// replay them; Cycles, MinSwaps and FixedPoints expose the cycle structure;
// Seq, Factorial and Permutations generate permutation spaces for testing.
//
// [plan] - Document (UUID, timestamps, steps, stats) with integrity-checked
// JSON serialization, request Options, and a Runner that caches plans and
// rendered artifacts.
//
// [render] - Text draws a terminal wire diagram with one wire per slot and
// one SWAP gate per exchange; ToDOT/SVG/PNG go through Graphviz; PDF shells
// out to rsvg-convert.
//
// [cache] - Content-addressed caching keyed on SHA-256 of the request.
// FileCache for the CLI, RedisCache for shared deployments, NullCache to
// disable.
//
// [archive] - Plan history keyed by document ID. FileStore keeps one JSON
// file per plan, MongoStore keeps a collection with summary fields for
// listing.
//
// [errors] - Structured error codes shared by every layer and mapped to
// HTTP statuses by the API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/perm/...   # Specific package
//	go test -run Example     # Examples only
//
// Mongo-backed tests need SWAPPLAN_MONGO_URI and skip otherwise.
//
// [perm]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/perm
// [plan]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/plan
// [render]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/render
// [cache]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/cache
// [archive]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/archive
// [errors]: https://pkg.go.dev/github.com/swaplab/swapplan/pkg/errors
package pkg
