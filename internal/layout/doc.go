// Package layout assigns scrolling comments to horizontal lanes.
//
// Config is the validated layout record, Metrics the constants derived from
// it, and Allocator the greedy lane scheduler. A lane is reused only once the
// previous comment's trailing edge has entered the screen. When every lane is
// still busy the comment goes to the lane that frees up first and the
// placement is flagged as an overflow; comments are never dropped for lack
// of lanes.
package layout
