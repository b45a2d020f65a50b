package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/ranking"
	rollRepo "github.com/KirkDiggler/rollstats/internal/repositories/roll_log"
	settingsRepo "github.com/KirkDiggler/rollstats/internal/repositories/settings"
	aggregate "github.com/KirkDiggler/rollstats/internal/stats"
)

// service implements the Service interface
type service struct {
	rollReader   rollRepo.Reader
	settingsRepo settingsRepo.Repository
	gmUserIDs    map[string]bool
}

// New creates a new statistics service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RollReader == nil {
		return nil, ErrNilRollReader
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	gms := make(map[string]bool, len(cfg.GMUserIDs))
	for _, id := range cfg.GMUserIDs {
		if id != "" {
			gms[id] = true
		}
	}

	return &service{
		rollReader:   cfg.RollReader,
		settingsRepo: cfg.SettingsRepo,
		gmUserIDs:    gms,
	}, nil
}

// snapshot reads the log and the settings once for a query
func (s *service) snapshot(ctx context.Context) ([]*models.RollRecord, aggregate.Filter, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{})
	if err != nil {
		return nil, aggregate.Filter{}, fmt.Errorf("failed to get settings: %w", err)
	}

	output, err := s.rollReader.ListRolls(ctx, &rollRepo.ListRollsInput{})
	if err != nil {
		return nil, aggregate.Filter{}, fmt.Errorf("failed to list rolls: %w", err)
	}

	var filter aggregate.Filter
	if settings.HideGMData && len(s.gmUserIDs) > 0 {
		filter.ExcludeUserIDs = s.gmUserIDs
	}

	return output.Records, filter, nil
}

// GetStats computes a bundle for one user or for everyone
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		input = &GetStatsInput{}
	}

	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filter.UserID = input.UserID
	return &GetStatsOutput{
		UserID: input.UserID,
		User:   displayName(records, input.UserID),
		Bundle: aggregate.Compute(records, filter),
	}, nil
}

// GetComparison computes the user's bundle and the global one from the same read
func (s *service) GetComparison(ctx context.Context, input *GetComparisonInput) (*GetComparisonOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	global := aggregate.Compute(records, filter)
	filter.UserID = input.UserID
	player := aggregate.Compute(records, filter)

	return &GetComparisonOutput{
		UserID: input.UserID,
		User:   displayName(records, input.UserID),
		Player: player,
		Global: global,
		Rows:   aggregate.Compare(player, global),
	}, nil
}

// GetRankings builds every leaderboard
func (s *service) GetRankings(ctx context.Context, input *GetRankingsInput) (*GetRankingsOutput, error) {
	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &GetRankingsOutput{
		Rankings: ranking.Build(records, filter),
	}, nil
}

// GetTopPerformers keeps only the leaders of each leaderboard
func (s *service) GetTopPerformers(ctx context.Context, input *GetTopPerformersInput) (*GetTopPerformersOutput, error) {
	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &GetTopPerformersOutput{
		Top: ranking.TopPerformers(ranking.Build(records, filter)),
	}, nil
}

// GetPrintableRanking groups leaderboards by rank. An empty log is reported
// as ErrNoData so the caller can show an informational message.
func (s *service) GetPrintableRanking(ctx context.Context, input *GetPrintableRankingInput) (*GetPrintableRankingOutput, error) {
	if input == nil {
		input = &GetPrintableRankingInput{}
	}

	dimensions := models.RankingDimensions
	if input.Dimension != "" {
		if !validDimension(input.Dimension) {
			return nil, ErrUnknownDimension
		}
		dimensions = []models.RankingDimension{input.Dimension}
	}

	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if len(filter.Apply(records)) == 0 {
		return nil, ErrNoData
	}

	rankings := ranking.Build(records, filter)
	boards := make([]*Board, 0, len(dimensions))
	for _, dim := range dimensions {
		boards = append(boards, &Board{
			Dimension: dim,
			Groups:    ranking.Group(rankings[dim]),
		})
	}

	return &GetPrintableRankingOutput{Boards: boards}, nil
}

// ListUsers returns every user with rolls, ordered by display name
func (s *service) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := ranking.Build(records, filter)[models.RankingMostRolls]
	users := make([]*UserSummary, 0, len(entries))
	for _, e := range entries {
		users = append(users, &UserSummary{
			UserID: e.UserID,
			User:   e.User,
			Actor:  e.Actor,
			Rolls:  int(e.Value),
		})
	}

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].User != users[j].User {
			return users[i].User < users[j].User
		}
		return users[i].UserID < users[j].UserID
	})

	return &ListUsersOutput{Users: users}, nil
}

// ExportStats encodes a bundle. Nothing to export is ErrNoData.
func (s *service) ExportStats(ctx context.Context, input *ExportStatsInput) (*ExportStatsOutput, error) {
	if input == nil {
		input = &ExportStatsInput{}
	}

	format := input.Format
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, ErrUnknownFormat
	}

	records, filter, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filter.UserID = input.UserID
	bundle := aggregate.Compute(records, filter)
	if bundle.N == 0 {
		return nil, ErrNoData
	}

	return encodeBundle(bundle, input.UserID, format)
}

func validDimension(dim models.RankingDimension) bool {
	for _, d := range models.RankingDimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// displayName is the name on the user's latest record
func displayName(records []*models.RollRecord, userID string) string {
	if userID == "" {
		return ""
	}
	for i := len(records) - 1; i >= 0; i-- {
		if r := records[i]; r != nil && r.UserID == userID && r.User != "" {
			return r.User
		}
	}
	return userID
}

// SetHideGMData stores the switch and reads the settings back
func (s *service) SetHideGMData(ctx context.Context, input *SetHideGMDataInput) (*SetHideGMDataOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.settingsRepo.SetHideGMData(ctx, &settingsRepo.SetHideGMDataInput{HideGMData: input.HideGMData}); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &SetHideGMDataOutput{Settings: settings}, nil
}
