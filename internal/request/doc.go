// Package request loads batch files that name literals to render.
//
// A batch lists already-extracted IR tokens grouped under a literal name and
// translator kind. Batches are written in YAML (.yaml, .yml) or CUE (.cue);
// both decode to the same Batch value and pass through the same Validate.
//
// Example (YAML):
//
//	name: max_pool_2d
//	literals:
//	  - name: kernel
//	    kind: ints
//	    args: [3, 3]
//	  - name: rounding
//	    kind: rounding
//	    args: [ceil]
package request
