package attribute_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rollstats/internal/repositories/attribute_log Repository,Reader

import (
	"context"
)

// Reader is the read side of the damage and fatigue logs
type Reader interface {
	// ListDamage returns damage entries oldest first, optionally for one actor
	ListDamage(ctx context.Context, input *ListDamageInput) (*ListDamageOutput, error)

	// ListFatigue returns fatigue entries oldest first, optionally for one actor
	ListFatigue(ctx context.Context, input *ListFatigueInput) (*ListFatigueOutput, error)
}

// Repository holds the damage and fatigue logs that sit beside the roll log
type Repository interface {
	Reader

	// AppendDamage adds an entry to the end of the damage log
	AppendDamage(ctx context.Context, input *AppendDamageInput) error

	// AppendFatigue adds an entry to the end of the fatigue log
	AppendFatigue(ctx context.Context, input *AppendFatigueInput) error

	// ResetAttributes clears both logs
	ResetAttributes(ctx context.Context, input *ResetAttributesInput) error
}
