package models

// StatisticsBundle is the aggregate over a filtered set of roll records.
// It is computed on demand and never persisted.
type StatisticsBundle struct {
	// N is the number of records in the filtered set
	N int `json:"n"`

	// Totals maps each sum 3..18 to its occurrence count
	Totals map[int]int `json:"totals"`

	// DiceCount maps each face 1..6 to its occurrence count
	DiceCount map[int]int `json:"diceCount"`

	// AvgTotal is the mean total, nil when no record has one
	AvgTotal *float64 `json:"avgTotal"`

	Succ    int     `json:"succ"`
	Fail    int     `json:"fail"`
	SuccPct float64 `json:"succPct"`
	FailPct float64 `json:"failPct"`

	CritSucc int `json:"critSucc"`
	CritFail int `json:"critFail"`

	// UsuallyPassBy is the mean positive margin among successes
	UsuallyPassBy *float64 `json:"usuallyPassBy"`

	// UsuallyFailBy is the mean absolute negative margin among failures
	UsuallyFailBy *float64 `json:"usuallyFailBy"`
}

// Direction describes how a player's metric sits against the global value
type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
	DirectionEqual Direction = "equal"
)

// MetricComparison is one row of a player-vs-global comparison
type MetricComparison struct {
	// Metric is the name of the compared metric
	Metric string

	// Player is the player's value, nil when undefined
	Player *float64

	// Global is the value over all players, nil when undefined
	Global *float64

	// Direction is where the player sits relative to the global value
	Direction Direction

	// Favorable is true when the direction is good for the player
	Favorable bool
}
