package models

// RankingDimension names one leaderboard
type RankingDimension string

const (
	// RankingLuckiest orders by critical success count
	RankingLuckiest RankingDimension = "luckiest"

	// RankingUnluckiest orders by critical failure count
	RankingUnluckiest RankingDimension = "unluckiest"

	// RankingBestSuccess orders by success percentage
	RankingBestSuccess RankingDimension = "best_success"

	// RankingWorstSuccess orders by failure percentage
	RankingWorstSuccess RankingDimension = "worst_success"

	// RankingHighestAverage orders by mean total
	RankingHighestAverage RankingDimension = "highest_average"

	// RankingMostRolls orders by number of recorded rolls
	RankingMostRolls RankingDimension = "most_rolls"
)

// RankingDimensions lists every dimension in display order
var RankingDimensions = []RankingDimension{
	RankingLuckiest,
	RankingUnluckiest,
	RankingBestSuccess,
	RankingWorstSuccess,
	RankingHighestAverage,
	RankingMostRolls,
}

// RankingEntry is one user's row in one leaderboard
type RankingEntry struct {
	// UserID is the stable participant ID
	UserID string

	// User is the display name
	User string

	// Actor is the character most associated with the user
	Actor string

	// Value is the metric for the entry's dimension
	Value float64
}

// RankGroup is a set of entries sharing one competition rank
type RankGroup struct {
	// Rank is the shared position, 1-based
	Rank int

	// Value is the metric shared by every entry in the group
	Value float64

	// Entries are the tied users, in leaderboard order
	Entries []*RankingEntry
}
