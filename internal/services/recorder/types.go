package recorder

import (
	"github.com/KirkDiggler/rollstats/internal/common/clock"
	"github.com/KirkDiggler/rollstats/internal/common/uuid"
	"github.com/KirkDiggler/rollstats/internal/models"
	settingsRepo "github.com/KirkDiggler/rollstats/internal/repositories/settings"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
)

// Config holds the recorder's dependencies
type Config struct {
	SettingsRepo settingsRepo.Repository

	// Sink is the relay Applier on the authority and the Publisher elsewhere
	Sink relay.Sink

	Clock clock.Clock
	UUID  uuid.UUID
}

// HandleChatEventInput contains the incoming chat event
type HandleChatEventInput struct {
	Event *models.ChatEvent
}

// HandleChatEventOutput reports what happened to the event
type HandleChatEventOutput struct {
	// Recorded is false when recording is off or the event is not a roll
	Recorded bool

	// Record is the submitted record when Recorded is true
	Record *models.RollRecord
}

// ResetAllInput contains parameters for clearing the logs
type ResetAllInput struct{}

// ResetAllOutput is returned once the reset was submitted
type ResetAllOutput struct{}

// SetActiveInput contains the new recording state
type SetActiveInput struct {
	Active bool
}

// ToggleActiveInput contains parameters for flipping the recording state
type ToggleActiveInput struct{}

// ToggleActiveOutput contains the recording state after the flip
type ToggleActiveOutput struct {
	Active bool
}
