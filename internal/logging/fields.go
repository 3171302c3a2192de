package logging

// Log schema constants for uvvis structured logs.
const (
	SchemaID    = "uvvis.log.v1"
	FieldSchema = "log_schema"
	FieldRunID  = "run_id"

	FieldComponent = "component"
	FieldSource    = "source"
	FieldFile      = "file"
	FieldSample    = "sample"
	FieldReason    = "reason"
	FieldPath      = "path"
)
