// Package render translates every literal of a request batch and serializes
// the results.
//
// Rendering runs the batch in file order. ModeCollectAll reports every
// failing literal, ModeFailFast stops at the first. Each run is tagged with a
// run ID so JSON output can be correlated with logs; tests use a
// FixedGenerator to keep golden files stable.
package render
