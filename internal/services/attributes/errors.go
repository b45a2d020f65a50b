package attributes

// AttributeError is a custom error type for attribute tracking errors
type AttributeError string

// Error implements the error interface
func (e AttributeError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        AttributeError = "config cannot be nil"
	ErrNilSink          AttributeError = "sink cannot be nil"
	ErrNilAttributeRepo AttributeError = "attribute log reader cannot be nil"
	ErrNilClock         AttributeError = "clock cannot be nil"
	ErrNilUUID          AttributeError = "UUID generator cannot be nil"
	ErrNilInput         AttributeError = "input cannot be nil"
	ErrMissingActor     AttributeError = "actor ID cannot be empty"
	ErrUnknownAttribute AttributeError = "unknown attribute"
)
