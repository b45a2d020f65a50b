package roll_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rollstats/internal/repositories/roll_log Repository,Reader

import (
	"context"
)

// Reader is the read side of the roll log, safe to hand to any instance
type Reader interface {
	// ListRolls returns every record, oldest first
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)
}

// Repository is the append-only roll log shared by the whole group.
// Only the authoritative instance is ever handed one.
type Repository interface {
	Reader

	// AppendRoll adds a record to the end of the log
	AppendRoll(ctx context.Context, input *AppendRollInput) error

	// ResetRolls clears the log
	ResetRolls(ctx context.Context, input *ResetRollsInput) error
}
