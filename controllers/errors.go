package controllers

// ValidationError reports a missing precondition caught before any
// network call is made. It is shown to the operator as a blocking
// message and never touches local state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
