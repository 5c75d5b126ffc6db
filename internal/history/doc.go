// Package history records completed conversions in a SQLite database under
// the configured state directory.
//
// Each conversion run gets a UUID and a row summarizing its input, output,
// and placement counts. The schema is versioned; a database written by an
// incompatible version is rejected with ErrSchemaMismatch rather than
// migrated. Writes retry briefly when another process holds the database.
package history
