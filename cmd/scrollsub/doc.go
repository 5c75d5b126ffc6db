// Package main hosts the scrollsub CLI entrypoint and command graph.
//
// The Cobra command tree reads comment files, runs the converter, writes the
// resulting ASS script, and records each run in the history database. It
// centralizes configuration resolution and logger setup so subcommands only
// deal with their own flags and output.
//
// Stdout carries documents and tables; logs and status summaries go to
// stderr so `scrollsub convert in.json > out.ass` stays clean.
package main
