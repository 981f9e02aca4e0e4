package models

// LoadPhase enumerates the lifecycle of one asynchronous data source.
type LoadPhase string

const (
	PhaseIdle    LoadPhase = "idle"
	PhaseLoading LoadPhase = "loading"
	PhaseSuccess LoadPhase = "success"
	PhaseError   LoadPhase = "error"
)

// LoadState is the tagged fetch-lifecycle state of one data source. Data is
// only meaningful in the success phase; Reason only in the error phase.
type LoadState[T any] struct {
	Phase  LoadPhase `json:"phase"`
	Data   T         `json:"data,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

// Idle returns the initial state of a source that has never been fetched.
func Idle[T any]() LoadState[T] {
	return LoadState[T]{Phase: PhaseIdle}
}

// Loading returns the in-flight state.
func Loading[T any]() LoadState[T] {
	return LoadState[T]{Phase: PhaseLoading}
}

// Succeeded wraps fetched data in a terminal success state.
func Succeeded[T any](data T) LoadState[T] {
	return LoadState[T]{Phase: PhaseSuccess, Data: data}
}

// Failed wraps a fetch failure in a terminal error state.
func Failed[T any](reason string) LoadState[T] {
	return LoadState[T]{Phase: PhaseError, Reason: reason}
}

// Terminal reports whether the source has settled (success or error).
func (s LoadState[T]) Terminal() bool {
	return s.Phase == PhaseSuccess || s.Phase == PhaseError
}
