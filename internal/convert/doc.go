// Package convert turns a batch of scrolling comments into a rendered ASS
// script.
//
// A Converter validates its layout once at construction, then each Convert
// call sorts a copy of the input by start time, optionally normalizes the
// comment text, assigns lanes with a fresh layout.Allocator, and renders the
// placements through ass.Script. Comments that cannot scroll are reported in
// Result.Skipped rather than failing the batch; the only per-call failure is
// an empty input.
package convert
