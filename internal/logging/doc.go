// Package logging assembles structured slog loggers for scrollsub.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// Logs go to stderr by default because stdout may carry a rendered document.
// The package also provides attribute helpers, standardized field keys, and
// a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same shape of data.
package logging
