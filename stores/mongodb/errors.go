package mongodb

// ConnectionError reports a failed bootstrap. The driver error is kept as the cause.
type ConnectionError struct {
	cause error
}

func (e *ConnectionError) Error() string {
	return "failed to connect to MongoDB: " + e.cause.Error()
}

func (e *ConnectionError) Cause() error {
	return e.cause
}

func (e *ConnectionError) Unwrap() error {
	return e.cause
}

func Connection(cause error) *ConnectionError {
	return &ConnectionError{cause: cause}
}
