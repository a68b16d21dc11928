package intent

import "errors"

// Domain errors for the intent package.
var (
	ErrEmptyText       = errors.New("text is empty")
	ErrUnknownTaskType = errors.New("unknown task type")
	ErrUnknownIntent   = errors.New("unknown task/intent pair")
	ErrNoExamples      = errors.New("no examples provided")
	ErrNoCorpus        = errors.New("message corpus is not configured")
)
