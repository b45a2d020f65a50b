package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollstats/internal/services/stats Service

import "context"

// Service answers statistics queries over the roll log.
// Every call reads the log once and computes from scratch.
type Service interface {
	// GetStats returns the bundle for one user, or for everyone
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// GetComparison lines one user up against the global bundle
	GetComparison(ctx context.Context, input *GetComparisonInput) (*GetComparisonOutput, error)

	// GetRankings returns every leaderboard in full
	GetRankings(ctx context.Context, input *GetRankingsInput) (*GetRankingsOutput, error)

	// GetTopPerformers returns only the leaders of each dimension
	GetTopPerformers(ctx context.Context, input *GetTopPerformersInput) (*GetTopPerformersOutput, error)

	// GetPrintableRanking returns leaderboards grouped by competition rank
	GetPrintableRanking(ctx context.Context, input *GetPrintableRankingInput) (*GetPrintableRankingOutput, error)

	// ListUsers returns everyone with at least one recorded roll
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// ExportStats renders a bundle as CSV or JSON
	ExportStats(ctx context.Context, input *ExportStatsInput) (*ExportStatsOutput, error)

	// SetHideGMData turns the GM exclusion on or off for every query
	SetHideGMData(ctx context.Context, input *SetHideGMDataInput) (*SetHideGMDataOutput, error)
}
