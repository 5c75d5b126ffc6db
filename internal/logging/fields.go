package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldRunID identifies one conversion run in the history database.
	FieldRunID = "run_id"
	// FieldTrack is the lane index a comment was placed on.
	FieldTrack = "track"
	// FieldSource is the input the comments were read from.
	FieldSource = "source"
)
