package attributes

import (
	"time"

	"github.com/KirkDiggler/rollstats/internal/common/clock"
	"github.com/KirkDiggler/rollstats/internal/common/uuid"
	"github.com/KirkDiggler/rollstats/internal/models"
	attributeRepo "github.com/KirkDiggler/rollstats/internal/repositories/attribute_log"
	"github.com/KirkDiggler/rollstats/internal/services/relay"
)

// Config holds the attribute service dependencies
type Config struct {
	Sink          relay.Sink
	AttributeRepo attributeRepo.Reader
	Clock         clock.Clock
	UUID          uuid.UUID
}

// HandleAttributeChangeInput describes one resource update
type HandleAttributeChangeInput struct {
	ActorID   string
	ActorName string

	// UserID and UserName identify who made the change
	UserID   string
	UserName string

	Attribute models.Attribute
	Before    int
	After     int

	// Timestamp of the change; the clock is used when zero
	Timestamp time.Time
}

// HandleAttributeChangeOutput reports the logged entry, if any
type HandleAttributeChangeOutput struct {
	// Recorded is false when the value did not go down
	Recorded bool

	Damage  *models.DamageEntry
	Fatigue *models.FatigueEntry
}

// SummarizeInput contains parameters for the per-actor totals
type SummarizeInput struct {
	// ActorID limits the summary to one actor when set
	ActorID string
}

// SummarizeOutput contains one summary per actor, ordered by name
type SummarizeOutput struct {
	Actors []*models.ActorAttributeSummary
}
