// Package output writes rendered scripts to disk.
//
// WriteFile holds an exclusive advisory lock beside the target while it
// writes, so two conversions aimed at the same file fail fast instead of
// interleaving, and replaces the target atomically so readers never observe
// a partial script.
package output
