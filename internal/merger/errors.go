package merger

import "fmt"

// FailureKind enumerates the hard-failure categories that abort a whole run.
// Soft per-file and per-sheet problems are accumulated as strings instead.
type FailureKind int

const (
	FailureEmptyInput FailureKind = iota
	FailureTooManyFiles
	FailureNoValidFiles
	FailureNoData
	FailureWrite
	FailureInternal
)

func (k FailureKind) String() string {
	switch k {
	case FailureEmptyInput:
		return "empty_input"
	case FailureTooManyFiles:
		return "too_many_files"
	case FailureNoValidFiles:
		return "no_valid_files"
	case FailureNoData:
		return "no_data"
	case FailureWrite:
		return "write_failed"
	default:
		return "internal"
	}
}

// PipelineError is the single typed failure raised inside the pipeline and
// converted to a failure Result at the top of the orchestrator. It never
// escapes to the caller.
type PipelineError struct {
	Kind    FailureKind
	Message string
}

func (e *PipelineError) Error() string { return e.Message }

func newPipelineError(kind FailureKind, format string, args ...any) *PipelineError {
	return &PipelineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
