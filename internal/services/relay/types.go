package relay

import (
	"fmt"

	"github.com/KirkDiggler/rollstats/internal/models"
)

// DefaultChannel is the Pub/Sub channel commands travel on
const DefaultChannel = "rollstats:relay"

// Op names a write against the shared logs
type Op string

const (
	// OpAppendRoll appends Command.Roll to the roll log
	OpAppendRoll Op = "append_roll"

	// OpAppendDamage appends Command.Damage to the damage log
	OpAppendDamage Op = "append_damage"

	// OpAppendFatigue appends Command.Fatigue to the fatigue log
	OpAppendFatigue Op = "append_fatigue"

	// OpResetAll clears every log
	OpResetAll Op = "reset_all"
)

// Command is one write request. Exactly the payload matching Op is set.
type Command struct {
	Op      Op                   `json:"op"`
	Roll    *models.RollRecord   `json:"roll,omitempty"`
	Damage  *models.DamageEntry  `json:"damage,omitempty"`
	Fatigue *models.FatigueEntry `json:"fatigue,omitempty"`
}

// Validate checks that the command can be applied
func (c *Command) Validate() error {
	if c == nil {
		return ErrNilCommand
	}

	switch c.Op {
	case OpAppendRoll:
		if c.Roll == nil {
			return ErrMissingPayload
		}
		// records may come from another process's build
		if err := c.Roll.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRoll, err)
		}
	case OpAppendDamage:
		if c.Damage == nil {
			return ErrMissingPayload
		}
	case OpAppendFatigue:
		if c.Fatigue == nil {
			return ErrMissingPayload
		}
	case OpResetAll:
	default:
		return ErrUnknownOp
	}

	return nil
}
