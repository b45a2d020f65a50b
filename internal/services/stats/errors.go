package stats

// StatsError is a custom error type for statistics errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        StatsError = "config cannot be nil"
	ErrNilRollReader    StatsError = "roll log reader cannot be nil"
	ErrNilSettingsRepo  StatsError = "settings repository cannot be nil"
	ErrMissingUserID    StatsError = "user ID cannot be empty"
	ErrNoData           StatsError = "no roll data recorded yet"
	ErrUnknownDimension StatsError = "unknown ranking dimension"
	ErrUnknownFormat    StatsError = "unknown export format"
	ErrNilInput         StatsError = "input cannot be nil"
)
