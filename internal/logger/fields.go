package logger

// Structured field names shared by every component
const (
	FieldArtist     = "artist"
	FieldCount      = "count"
	FieldLimit      = "limit"
	FieldRegistry   = "registry_size"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldErrorKind  = "error_kind"
	FieldPath       = "path"
	FieldBackend    = "backend"
)
