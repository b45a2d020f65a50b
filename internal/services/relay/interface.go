package relay

//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/KirkDiggler/rollstats/internal/services/relay Sink

import "context"

// Sink accepts write commands. The authority applies them in place;
// everyone else forwards them and returns without waiting.
type Sink interface {
	// Submit hands a command to the writer
	Submit(ctx context.Context, cmd *Command) error
}
