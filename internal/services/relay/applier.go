package relay

import (
	"context"
	"fmt"

	attributeRepo "github.com/KirkDiggler/rollstats/internal/repositories/attribute_log"
	rollRepo "github.com/KirkDiggler/rollstats/internal/repositories/roll_log"
)

// ApplierConfig holds the repositories the authority writes to
type ApplierConfig struct {
	RollRepo      rollRepo.Repository
	AttributeRepo attributeRepo.Repository
}

// Applier is the single writer. It runs commands directly against the logs.
type Applier struct {
	rollRepo      rollRepo.Repository
	attributeRepo attributeRepo.Repository
}

// NewApplier creates the authority's sink
func NewApplier(cfg *ApplierConfig) (*Applier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RollRepo == nil {
		return nil, ErrNilRollRepo
	}

	if cfg.AttributeRepo == nil {
		return nil, ErrNilAttributeRepo
	}

	return &Applier{
		rollRepo:      cfg.RollRepo,
		attributeRepo: cfg.AttributeRepo,
	}, nil
}

// Submit applies the command before returning
func (a *Applier) Submit(ctx context.Context, cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.Op {
	case OpAppendRoll:
		return a.rollRepo.AppendRoll(ctx, &rollRepo.AppendRollInput{Record: cmd.Roll})
	case OpAppendDamage:
		return a.attributeRepo.AppendDamage(ctx, &attributeRepo.AppendDamageInput{Entry: cmd.Damage})
	case OpAppendFatigue:
		return a.attributeRepo.AppendFatigue(ctx, &attributeRepo.AppendFatigueInput{Entry: cmd.Fatigue})
	case OpResetAll:
		if err := a.rollRepo.ResetRolls(ctx, &rollRepo.ResetRollsInput{}); err != nil {
			return fmt.Errorf("failed to reset rolls: %w", err)
		}
		if err := a.attributeRepo.ResetAttributes(ctx, &attributeRepo.ResetAttributesInput{}); err != nil {
			return fmt.Errorf("failed to reset attributes: %w", err)
		}
	}

	return nil
}
