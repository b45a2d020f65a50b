package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/rollstats/internal/common/uuid UUID

// UUID hands out identifiers for log entries
type UUID interface {
	NewUUID() string
}

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random version 4 UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
