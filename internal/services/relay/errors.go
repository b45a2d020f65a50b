package relay

// RelayError is a custom error type for relay errors
type RelayError string

// Error implements the error interface
func (e RelayError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        RelayError = "config cannot be nil"
	ErrNilRedisClient   RelayError = "redis client cannot be nil"
	ErrNilRollRepo      RelayError = "roll log repository cannot be nil"
	ErrNilAttributeRepo RelayError = "attribute log repository cannot be nil"
	ErrNilSink          RelayError = "sink cannot be nil"
	ErrNilCommand       RelayError = "command cannot be nil"
	ErrUnknownOp        RelayError = "unknown command op"
	ErrMissingPayload   RelayError = "command is missing its payload"
	ErrInvalidRoll      RelayError = "roll record is invalid"
)
