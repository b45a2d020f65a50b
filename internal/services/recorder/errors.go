package recorder

// RecorderError is a custom error type for recorder errors
type RecorderError string

// Error implements the error interface
func (e RecorderError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       RecorderError = "config cannot be nil"
	ErrNilSettingsRepo RecorderError = "settings repository cannot be nil"
	ErrNilSink         RecorderError = "sink cannot be nil"
	ErrNilClock        RecorderError = "clock cannot be nil"
	ErrNilUUID         RecorderError = "UUID generator cannot be nil"
	ErrNilInput        RecorderError = "input cannot be nil"
)
