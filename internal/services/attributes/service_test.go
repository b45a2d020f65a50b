package attributes

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/rollstats/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/rollstats/internal/common/uuid/mocks"
	"github.com/KirkDiggler/rollstats/internal/models"
	attributeRepo "github.com/KirkDiggler/rollstats/internal/repositories/attribute_log"
	attributeMocks "github.com/KirkDiggler/rollstats/internal/repositories/attribute_log/mocks"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
	relayMocks "github.com/KirkDiggler/rollstats/internal/services/relay/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AttributeServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockSink          *relayMocks.MockSink
	mockAttributeRepo *attributeMocks.MockReader
	mockClock         *clockMocks.MockClock
	mockUUID          *uuidMocks.MockUUID
	service           Service
	ctx               context.Context
	testTime          time.Time
}

func (s *AttributeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSink = relayMocks.NewMockSink(s.mockCtrl)
	s.mockAttributeRepo = attributeMocks.NewMockReader(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		Sink:          s.mockSink,
		AttributeRepo: s.mockAttributeRepo,
		Clock:         s.mockClock,
		UUID:          s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AttributeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAttributeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttributeServiceTestSuite))
}

func (s *AttributeServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{AttributeRepo: s.mockAttributeRepo, Clock: s.mockClock, UUID: s.mockUUID})
	s.Equal(ErrNilSink, err)

	_, err = New(&Config{Sink: s.mockSink, Clock: s.mockClock, UUID: s.mockUUID})
	s.Equal(ErrNilAttributeRepo, err)
}

func (s *AttributeServiceTestSuite) TestHPDecreaseLogsDamage() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("damage-1")

	var submitted *relay.Command
	s.mockSink.EXPECT().
		Submit(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *relay.Command) error {
			submitted = cmd
			return nil
		})

	output, err := s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{
		ActorID:   "actor-1",
		ActorName: "Sir Reginald",
		UserID:    "user-1",
		UserName:  "Alice",
		Attribute: models.AttributeHP,
		Before:    12,
		After:     7,
	})
	s.Require().NoError(err)
	s.True(output.Recorded)
	s.Nil(output.Fatigue)

	s.Require().NotNil(submitted)
	s.Equal(relay.OpAppendDamage, submitted.Op)
	s.Equal(&models.DamageEntry{
		ID:              "damage-1",
		Timestamp:       s.testTime,
		ActorID:         "actor-1",
		ActorName:       "Sir Reginald",
		DamageTaken:     5,
		HPBefore:        12,
		HPAfter:         7,
		ChangedBy:       "Alice",
		ChangedByUserID: "user-1",
	}, submitted.Damage)
}

func (s *AttributeServiceTestSuite) TestFPDecreaseLogsFatigue() {
	eventTime := s.testTime.Add(-time.Hour)
	s.mockUUID.EXPECT().NewUUID().Return("fatigue-1")
	s.mockSink.EXPECT().Submit(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{
		ActorID:   "actor-2",
		ActorName: "Wizard",
		Attribute: models.AttributeFP,
		Before:    10,
		After:     -2,
		Timestamp: eventTime,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Fatigue)
	s.Equal(12, output.Fatigue.FatigueSpent)
	s.Equal(eventTime, output.Fatigue.Timestamp)
	s.Equal(unknownUser, output.Fatigue.ChangedBy)
}

func (s *AttributeServiceTestSuite) TestIncreaseIsIgnored() {
	for _, after := range []int{10, 11} {
		output, err := s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{
			ActorID:   "actor-1",
			Attribute: models.AttributeHP,
			Before:    10,
			After:     after,
		})
		s.Require().NoError(err)
		s.False(output.Recorded)
	}
}

func (s *AttributeServiceTestSuite) TestInvalidInput() {
	_, err := s.service.HandleAttributeChange(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	_, err = s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{Attribute: models.AttributeHP})
	s.Equal(ErrMissingActor, err)

	_, err = s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{ActorID: "actor-1", Attribute: "MP"})
	s.Equal(ErrUnknownAttribute, err)
}

func (s *AttributeServiceTestSuite) TestSinkError() {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockUUID.EXPECT().NewUUID().Return("damage-1")
	s.mockSink.EXPECT().Submit(s.ctx, gomock.Any()).Return(errors.New("publish failed"))

	_, err := s.service.HandleAttributeChange(s.ctx, &HandleAttributeChangeInput{
		ActorID:   "actor-1",
		Attribute: models.AttributeHP,
		Before:    5,
		After:     4,
	})
	s.Error(err)
}

func (s *AttributeServiceTestSuite) TestSummarize() {
	s.mockAttributeRepo.EXPECT().
		ListDamage(s.ctx, &attributeRepo.ListDamageInput{}).
		Return(&attributeRepo.ListDamageOutput{Entries: []*models.DamageEntry{
			{ActorID: "actor-1", ActorName: "Reggie", DamageTaken: 3},
			{ActorID: "actor-2", ActorName: "Wizard", DamageTaken: 1},
			{ActorID: "actor-1", ActorName: "Sir Reginald", DamageTaken: 4},
		}}, nil)
	s.mockAttributeRepo.EXPECT().
		ListFatigue(s.ctx, &attributeRepo.ListFatigueInput{}).
		Return(&attributeRepo.ListFatigueOutput{Entries: []*models.FatigueEntry{
			{ActorID: "actor-2", ActorName: "Wizard", FatigueSpent: 2},
			{ActorID: "actor-3", FatigueSpent: 1},
		}}, nil)

	output, err := s.service.Summarize(s.ctx, &SummarizeInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Actors, 3)

	s.Equal(&models.ActorAttributeSummary{ActorID: "actor-1", ActorName: "Sir Reginald", DamageTaken: 7, DamageEvents: 2}, output.Actors[0])
	s.Equal(&models.ActorAttributeSummary{ActorID: "actor-2", ActorName: "Wizard", DamageTaken: 1, DamageEvents: 1, FatigueSpent: 2, FatigueEvents: 1}, output.Actors[1])
	s.Equal(&models.ActorAttributeSummary{ActorID: "actor-3", ActorName: "actor-3", FatigueSpent: 1, FatigueEvents: 1}, output.Actors[2])
}

func (s *AttributeServiceTestSuite) TestSummarizeReadError() {
	s.mockAttributeRepo.EXPECT().
		ListDamage(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.service.Summarize(s.ctx, &SummarizeInput{ActorID: "actor-1"})
	s.Error(err)
}
