package stats

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/rollstats/internal/models"
	rollRepo "github.com/KirkDiggler/rollstats/internal/repositories/roll_log"
	rollMocks "github.com/KirkDiggler/rollstats/internal/repositories/roll_log/mocks"
	settingsRepo "github.com/KirkDiggler/rollstats/internal/repositories/settings"
	settingsMocks "github.com/KirkDiggler/rollstats/internal/repositories/settings/mocks"
	aggregate "github.com/KirkDiggler/rollstats/internal/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRollReader   *rollMocks.MockReader
	mockSettingsRepo *settingsMocks.MockRepository
	service          Service
	ctx              context.Context

	records []*models.RollRecord
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRollReader = rollMocks.NewMockReader(s.mockCtrl)
	s.mockSettingsRepo = settingsMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		RollReader:   s.mockRollReader,
		SettingsRepo: s.mockSettingsRepo,
		GMUserIDs:    []string{"gm-1", ""},
	})
	s.Require().NoError(err)
	s.service = svc

	s.records = []*models.RollRecord{
		{ID: "r1", UserID: "user-a", User: "Alice", Actor: "Sir Reginald", Total: models.IntPtr(5), Dice: []int{1, 1, 3}, Success: models.BoolPtr(true), Margin: models.IntPtr(7), IsCritSuccess: true},
		{ID: "r2", UserID: "user-b", User: "Bob", Total: models.IntPtr(14), Success: models.BoolPtr(false), Margin: models.IntPtr(-2)},
		{ID: "r3", UserID: "gm-1", User: "GM", Total: models.IntPtr(4), Success: models.BoolPtr(true), Margin: models.IntPtr(10), IsCritSuccess: true},
		{ID: "r4", UserID: "user-a", User: "Alicia", Total: models.IntPtr(9), Success: models.BoolPtr(true), Margin: models.IntPtr(3), Text: "Critical Success!"},
	}
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) expectSnapshot(records []*models.RollRecord, hideGM bool) {
	s.mockSettingsRepo.EXPECT().
		GetSettings(s.ctx, gomock.Any()).
		Return(&models.Settings{Active: true, HideGMData: hideGM}, nil)
	s.mockRollReader.EXPECT().
		ListRolls(s.ctx, &rollRepo.ListRollsInput{}).
		Return(&rollRepo.ListRollsOutput{Records: records}, nil)
}

func (s *StatsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{SettingsRepo: s.mockSettingsRepo})
	s.Equal(ErrNilRollReader, err)

	_, err = New(&Config{RollReader: s.mockRollReader})
	s.Equal(ErrNilSettingsRepo, err)
}

func (s *StatsServiceTestSuite) TestGetStatsGlobal() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.GetStats(s.ctx, &GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(4, output.Bundle.N)
	s.Equal(3, output.Bundle.CritSucc)
	s.Empty(output.User)
}

func (s *StatsServiceTestSuite) TestGetStatsForUser() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.GetStats(s.ctx, &GetStatsInput{UserID: "user-a"})
	s.Require().NoError(err)
	s.Equal("Alicia", output.User)
	s.Equal(2, output.Bundle.N)
	s.Equal(2, output.Bundle.CritSucc)
	s.Require().NotNil(output.Bundle.AvgTotal)
	s.InDelta(7.0, *output.Bundle.AvgTotal, 1e-9)
}

func (s *StatsServiceTestSuite) TestHideGMDataExcludesGMs() {
	s.expectSnapshot(s.records, true)

	output, err := s.service.GetStats(s.ctx, &GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(3, output.Bundle.N)
	s.Equal(2, output.Bundle.CritSucc)
}

func (s *StatsServiceTestSuite) TestGetComparison() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.GetComparison(s.ctx, &GetComparisonInput{UserID: "user-b"})
	s.Require().NoError(err)
	s.Equal("Bob", output.User)
	s.Equal(1, output.Player.N)
	s.Equal(4, output.Global.N)

	rows := make(map[string]models.MetricComparison)
	for _, row := range output.Rows {
		rows[row.Metric] = row
	}
	s.Equal(models.DirectionBelow, rows[aggregate.MetricSuccPct].Direction)
	s.False(rows[aggregate.MetricSuccPct].Favorable)
	s.Equal(models.DirectionAbove, rows[aggregate.MetricAvgTotal].Direction)
}

func (s *StatsServiceTestSuite) TestGetComparisonNeedsUser() {
	_, err := s.service.GetComparison(s.ctx, &GetComparisonInput{})
	s.Equal(ErrMissingUserID, err)
}

func (s *StatsServiceTestSuite) TestGetRankingsAndTop() {
	s.expectSnapshot(s.records, true)

	rankings, err := s.service.GetRankings(s.ctx, &GetRankingsInput{})
	s.Require().NoError(err)
	luckiest := rankings.Rankings[models.RankingLuckiest]
	s.Require().Len(luckiest, 2)
	s.Equal("Alicia", luckiest[0].User)
	s.Equal(2.0, luckiest[0].Value)

	s.expectSnapshot(s.records, false)
	top, err := s.service.GetTopPerformers(s.ctx, &GetTopPerformersInput{})
	s.Require().NoError(err)
	s.Require().Len(top.Top[models.RankingUnluckiest], 0)
	s.Require().Len(top.Top[models.RankingWorstSuccess], 1)
	s.Equal("Bob", top.Top[models.RankingWorstSuccess][0].User)
}

func (s *StatsServiceTestSuite) TestGetPrintableRanking() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.GetPrintableRanking(s.ctx, &GetPrintableRankingInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Boards, len(models.RankingDimensions))

	luckiest := output.Boards[0]
	s.Equal(models.RankingLuckiest, luckiest.Dimension)
	s.Require().Len(luckiest.Groups, 3)
	s.Equal(1, luckiest.Groups[0].Rank)
	s.Equal(2, luckiest.Groups[1].Rank)
	s.Equal(3, luckiest.Groups[2].Rank)
}

func (s *StatsServiceTestSuite) TestGetPrintableRankingSingleDimension() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.GetPrintableRanking(s.ctx, &GetPrintableRankingInput{Dimension: models.RankingMostRolls})
	s.Require().NoError(err)
	s.Require().Len(output.Boards, 1)
	s.Equal(1, output.Boards[0].Groups[0].Rank)
	s.Equal("Alicia", output.Boards[0].Groups[0].Entries[0].User)
}

func (s *StatsServiceTestSuite) TestGetPrintableRankingEmpty() {
	s.expectSnapshot(nil, false)

	_, err := s.service.GetPrintableRanking(s.ctx, &GetPrintableRankingInput{})
	s.Equal(ErrNoData, err)
}

func (s *StatsServiceTestSuite) TestGetPrintableRankingUnknownDimension() {
	_, err := s.service.GetPrintableRanking(s.ctx, &GetPrintableRankingInput{Dimension: "fastest"})
	s.Equal(ErrUnknownDimension, err)
}

func (s *StatsServiceTestSuite) TestListUsers() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.ListUsers(s.ctx, &ListUsersInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Users, 3)
	s.Equal("Alicia", output.Users[0].User)
	s.Equal("Sir Reginald", output.Users[0].Actor)
	s.Equal(2, output.Users[0].Rolls)
	s.Equal("Bob", output.Users[1].User)
	s.Equal("GM", output.Users[2].User)
}

func (s *StatsServiceTestSuite) TestExportCSV() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.ExportStats(s.ctx, &ExportStatsInput{UserID: "user-b"})
	s.Require().NoError(err)
	s.Equal("rollstats-user-b.csv", output.Filename)
	s.Equal("text/csv", output.ContentType)

	rows, err := csv.NewReader(strings.NewReader(string(output.Data))).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 11+16+6)
	s.Equal([]string{"metric", "value"}, rows[0])

	values := make(map[string]string)
	for _, row := range rows[1:] {
		values[row[0]] = row[1]
	}
	s.Equal("1", values[aggregate.MetricRolls])
	s.Equal("14.00", values[aggregate.MetricAvgTotal])
	s.Equal("0.00", values[aggregate.MetricSuccPct])
	s.Equal("", values[aggregate.MetricUsuallyPassBy])
	s.Equal("2.00", values[aggregate.MetricUsuallyFailBy])
	s.Equal("1", values["total_14"])
	s.Equal("0", values["face_6"])
}

func (s *StatsServiceTestSuite) TestExportJSON() {
	s.expectSnapshot(s.records, false)

	output, err := s.service.ExportStats(s.ctx, &ExportStatsInput{Format: ExportFormatJSON})
	s.Require().NoError(err)
	s.Equal("rollstats-all.json", output.Filename)

	var bundle models.StatisticsBundle
	s.Require().NoError(json.Unmarshal(output.Data, &bundle))
	s.Equal(4, bundle.N)
	s.Equal(1, bundle.Totals[14])
	s.Equal(2, bundle.DiceCount[1])
}

func (s *StatsServiceTestSuite) TestExportEmpty() {
	s.expectSnapshot(s.records, false)

	_, err := s.service.ExportStats(s.ctx, &ExportStatsInput{UserID: "nobody"})
	s.Equal(ErrNoData, err)
}

func (s *StatsServiceTestSuite) TestExportUnknownFormat() {
	_, err := s.service.ExportStats(s.ctx, &ExportStatsInput{Format: "xml"})
	s.Equal(ErrUnknownFormat, err)
}

func (s *StatsServiceTestSuite) TestReadErrorsPropagate() {
	s.mockSettingsRepo.EXPECT().
		GetSettings(s.ctx, gomock.Any()).
		Return(models.DefaultSettings(), nil)
	s.mockRollReader.EXPECT().
		ListRolls(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.GetStats(s.ctx, &GetStatsInput{})
	s.Error(err)
}

func (s *StatsServiceTestSuite) TestSetHideGMData() {
	gomock.InOrder(
		s.mockSettingsRepo.EXPECT().
			SetHideGMData(s.ctx, &settingsRepo.SetHideGMDataInput{HideGMData: true}).
			Return(nil),
		s.mockSettingsRepo.EXPECT().
			GetSettings(s.ctx, gomock.Any()).
			Return(&models.Settings{Active: true, HideGMData: true}, nil),
	)

	output, err := s.service.SetHideGMData(s.ctx, &SetHideGMDataInput{HideGMData: true})

	s.Require().NoError(err)
	s.True(output.Settings.HideGMData)
}

func (s *StatsServiceTestSuite) TestSetHideGMDataErrors() {
	_, err := s.service.SetHideGMData(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	s.mockSettingsRepo.EXPECT().
		SetHideGMData(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	_, err = s.service.SetHideGMData(s.ctx, &SetHideGMDataInput{})
	s.Error(err)
}
