// Package planner turns goal time edits into published pace results.
//
// A Planner holds the current goal text and unit, recomputes the result when
// either changes, and publishes it to a store. The result is memoized on
// (total seconds, unit): edits that parse to the same goal republish nothing
// and keep the same *pace.Result reference. Parse failures and non-positive
// goals publish nil, clearing whatever consumers show.
package planner
