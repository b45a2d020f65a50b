package stats

import (
	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/ranking"
	rollRepo "github.com/KirkDiggler/rollstats/internal/repositories/roll_log"
	settingsRepo "github.com/KirkDiggler/rollstats/internal/repositories/settings"
)

// ExportFormat selects the export encoding
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

// Config holds the statistics service dependencies
type Config struct {
	RollReader   rollRepo.Reader
	SettingsRepo settingsRepo.Repository

	// GMUserIDs are left out of every query while HideGMData is on
	GMUserIDs []string
}

// GetStatsInput contains parameters for a bundle query
type GetStatsInput struct {
	// UserID restricts the bundle to one user; empty means everyone
	UserID string
}

// GetStatsOutput contains the computed bundle
type GetStatsOutput struct {
	UserID string

	// User is the display name for UserID, empty for the global bundle
	User string

	Bundle *models.StatisticsBundle
}

// GetComparisonInput contains the user to compare
type GetComparisonInput struct {
	UserID string
}

// GetComparisonOutput contains both bundles and the per-metric rows
type GetComparisonOutput struct {
	UserID string
	User   string
	Player *models.StatisticsBundle
	Global *models.StatisticsBundle
	Rows   []models.MetricComparison
}

// GetRankingsInput contains parameters for the full leaderboards
type GetRankingsInput struct{}

// GetRankingsOutput contains every leaderboard
type GetRankingsOutput struct {
	Rankings ranking.Rankings
}

// GetTopPerformersInput contains parameters for the leaders query
type GetTopPerformersInput struct{}

// GetTopPerformersOutput contains the leaders per dimension
type GetTopPerformersOutput struct {
	Top ranking.Rankings
}

// GetPrintableRankingInput selects the leaderboard to print
type GetPrintableRankingInput struct {
	// Dimension to print; empty prints all of them
	Dimension models.RankingDimension
}

// Board is one leaderboard grouped by rank
type Board struct {
	Dimension models.RankingDimension
	Groups    []*models.RankGroup
}

// GetPrintableRankingOutput contains the boards in display order
type GetPrintableRankingOutput struct {
	Boards []*Board
}

// ListUsersInput contains parameters for listing users
type ListUsersInput struct{}

// UserSummary identifies one user with recorded rolls
type UserSummary struct {
	UserID string
	User   string
	Actor  string
	Rolls  int
}

// ListUsersOutput contains users ordered by display name
type ListUsersOutput struct {
	Users []*UserSummary
}

// ExportStatsInput contains parameters for an export
type ExportStatsInput struct {
	// UserID restricts the export to one user; empty means everyone
	UserID string

	// Format defaults to CSV
	Format ExportFormat
}

// ExportStatsOutput contains the encoded bundle
type ExportStatsOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SetHideGMDataInput contains the new GM visibility state
type SetHideGMDataInput struct {
	HideGMData bool
}

// SetHideGMDataOutput contains the settings after the change
type SetHideGMDataOutput struct {
	Settings *models.Settings
}
