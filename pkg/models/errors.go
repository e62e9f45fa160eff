package models

// ErrorKind classifies task-level and API-level failures. Kinds surface in
// TaskError.Kind and map onto HTTP statuses in the API layer.
type ErrorKind string

const (
	ErrKindInvalidInput      ErrorKind = "InvalidInput"
	ErrKindNotFound          ErrorKind = "NotFound"
	ErrKindConflict          ErrorKind = "Conflict"
	ErrKindBrokerUnavailable ErrorKind = "BrokerUnavailable"
	ErrKindStoreUnavailable  ErrorKind = "StoreUnavailable"
	ErrKindStageTimeout      ErrorKind = "StageTimeout"
	ErrKindStageFailed       ErrorKind = "StageFailed"
	ErrKindAborted           ErrorKind = "Aborted"
	ErrKindInternal          ErrorKind = "Internal"
)
