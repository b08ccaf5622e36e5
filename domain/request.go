package domain

// RequestStatus is the lifecycle tag of an asynchronous concern.
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// RequestState holds exactly one of idle, pending, succeeded(Value) or failed(Message).
// The zero value is idle.
type RequestState[T any] struct {
	status  RequestStatus
	value   T
	message string
}

func Idle[T any]() RequestState[T] {
	return RequestState[T]{}
}

func Pending[T any]() RequestState[T] {
	return RequestState[T]{status: StatusPending}
}

func Succeeded[T any](v T) RequestState[T] {
	return RequestState[T]{status: StatusSucceeded, value: v}
}

func Failed[T any](message string) RequestState[T] {
	return RequestState[T]{status: StatusFailed, message: message}
}

func (s RequestState[T]) Status() RequestStatus { return s.status }
func (s RequestState[T]) IsIdle() bool          { return s.status == StatusIdle }
func (s RequestState[T]) IsPending() bool       { return s.status == StatusPending }
func (s RequestState[T]) IsSucceeded() bool     { return s.status == StatusSucceeded }
func (s RequestState[T]) IsFailed() bool        { return s.status == StatusFailed }

// Value returns the result when succeeded.
func (s RequestState[T]) Value() (T, bool) {
	if s.status != StatusSucceeded {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Message returns the failure message when failed, "" otherwise.
func (s RequestState[T]) Message() string {
	if s.status != StatusFailed {
		return ""
	}
	return s.message
}
