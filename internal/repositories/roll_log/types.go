package roll_log

import "github.com/KirkDiggler/rollstats/internal/models"

// AppendRollInput contains the record to append
type AppendRollInput struct {
	Record *models.RollRecord
}

// ListRollsInput contains parameters for listing the log
type ListRollsInput struct{}

// ListRollsOutput contains the log in append order
type ListRollsOutput struct {
	Records []*models.RollRecord
}

// ResetRollsInput contains parameters for clearing the log
type ResetRollsInput struct{}
