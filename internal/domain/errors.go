package domain

import "fmt"

// SourceErrorKind classifies a failure reported by an external source
type SourceErrorKind int

const (
	// SourceErrorTransport covers network failures, non-2xx HTTP statuses and
	// service-side errors that may clear on retry
	SourceErrorTransport SourceErrorKind = iota
	// SourceErrorMalformed means the response could not be decoded
	SourceErrorMalformed
	// SourceErrorRemote means the service rejected the request itself, such as
	// an unknown artist, so retrying gives the same answer
	SourceErrorRemote
)

func (k SourceErrorKind) String() string {
	switch k {
	case SourceErrorTransport:
		return "transport"
	case SourceErrorMalformed:
		return "malformed"
	case SourceErrorRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// SourceError is returned by catalog and similarity clients instead of a payload
type SourceError struct {
	Source  string
	Kind    SourceErrorKind
	Code    int
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != 0 {
		return fmt.Sprintf("%s %s error %d: %s", e.Source, e.Kind, e.Code, msg)
	}
	return fmt.Sprintf("%s %s error: %s", e.Source, e.Kind, msg)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
