// Package danmaku defines the scrolling comment record and decodes it from
// JSON.
//
// Records follow the ingestion contract {start_ms, duration_ms, text,
// style: {fontSize, color}}. Decoding is lenient about content: a record with
// a zero duration or empty text is still returned, because deciding whether a
// comment can be rendered belongs to the layout stage.
package danmaku
