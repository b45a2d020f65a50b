package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rollstats/internal/repositories/settings Repository

import (
	"context"

	"github.com/KirkDiggler/rollstats/internal/models"
)

// Repository defines persistence for the world settings
type Repository interface {
	// GetSettings returns the saved settings, defaults for anything unset
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.Settings, error)

	// SetActive turns roll recording on or off
	SetActive(ctx context.Context, input *SetActiveInput) error

	// SetHideGMData controls whether GM users are left out of statistics
	SetHideGMData(ctx context.Context, input *SetHideGMDataInput) error
}
