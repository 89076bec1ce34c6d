package services

// ValidationError marks a rejected write (missing required field, category
// outside the fixed set). Handlers turn it into a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
