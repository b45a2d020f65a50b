package recorder

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rollstats/internal/common/clock"
	"github.com/KirkDiggler/rollstats/internal/common/uuid"
	"github.com/KirkDiggler/rollstats/internal/models"
	settingsRepo "github.com/KirkDiggler/rollstats/internal/repositories/settings"
	"github.com/KirkDiggler/rollstats/internal/rolls"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
	sink         relay.Sink
	clock        clock.Clock
	uuid         uuid.UUID
}

// New creates a new recorder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
		sink:         cfg.Sink,
		clock:        cfg.Clock,
		uuid:         cfg.UUID,
	}, nil
}

// HandleChatEvent reads the settings once, then classifies, extracts and
// submits. A rejected event is a normal outcome, not an error.
func (s *service) HandleChatEvent(ctx context.Context, input *HandleChatEventInput) (*HandleChatEventOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return s.record(ctx, settings, input.Event)
}

func (s *service) record(ctx context.Context, settings *models.Settings, event *models.ChatEvent) (*HandleChatEventOutput, error) {
	if !settings.Active || !rolls.IsQualifyingRoll(event) {
		return &HandleChatEventOutput{}, nil
	}

	record := rolls.ExtractFields(event)
	if record == nil {
		return &HandleChatEventOutput{}, nil
	}

	record.ID = s.uuid.NewUUID()
	if record.Timestamp.IsZero() {
		record.Timestamp = s.clock.Now()
	}

	if err := s.sink.Submit(ctx, &relay.Command{Op: relay.OpAppendRoll, Roll: record}); err != nil {
		return nil, fmt.Errorf("failed to submit roll: %w", err)
	}

	return &HandleChatEventOutput{
		Recorded: true,
		Record:   record,
	}, nil
}

// ResetAll submits a reset. On the authority the logs are empty when it
// returns; elsewhere the reset is only on its way.
func (s *service) ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error) {
	if err := s.sink.Submit(ctx, &relay.Command{Op: relay.OpResetAll}); err != nil {
		return nil, fmt.Errorf("failed to submit reset: %w", err)
	}

	return &ResetAllOutput{}, nil
}

// SetActive stores the recording switch
func (s *service) SetActive(ctx context.Context, input *SetActiveInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.settingsRepo.SetActive(ctx, &settingsRepo.SetActiveInput{Active: input.Active})
}

// ToggleActive flips the recording switch
func (s *service) ToggleActive(ctx context.Context, input *ToggleActiveInput) (*ToggleActiveOutput, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	active := !settings.Active
	if err := s.settingsRepo.SetActive(ctx, &settingsRepo.SetActiveInput{Active: active}); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &ToggleActiveOutput{Active: active}, nil
}
