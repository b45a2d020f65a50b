package recorder

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollstats/internal/services/recorder Service

import "context"

// Service turns chat events into roll records and submits them
type Service interface {
	// HandleChatEvent records the event when it is a qualifying 3d6 roll
	HandleChatEvent(ctx context.Context, input *HandleChatEventInput) (*HandleChatEventOutput, error)

	// ResetAll clears every log
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// SetActive turns recording on or off
	SetActive(ctx context.Context, input *SetActiveInput) error

	// ToggleActive flips recording and reports the new state
	ToggleActive(ctx context.Context, input *ToggleActiveInput) (*ToggleActiveOutput, error)
}
