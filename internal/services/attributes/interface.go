package attributes

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollstats/internal/services/attributes Service

import "context"

// Service tracks damage taken and fatigue spent per actor
type Service interface {
	// HandleAttributeChange logs a decrease in HP or FP
	HandleAttributeChange(ctx context.Context, input *HandleAttributeChangeInput) (*HandleAttributeChangeOutput, error)

	// Summarize totals the logs per actor
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)
}
