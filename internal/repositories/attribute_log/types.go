package attribute_log

import "github.com/KirkDiggler/rollstats/internal/models"

// AppendDamageInput contains the entry to append
type AppendDamageInput struct {
	Entry *models.DamageEntry
}

// AppendFatigueInput contains the entry to append
type AppendFatigueInput struct {
	Entry *models.FatigueEntry
}

// ListDamageInput contains parameters for listing the damage log
type ListDamageInput struct {
	// ActorID limits the result to one actor when set
	ActorID string
}

// ListDamageOutput contains damage entries in append order
type ListDamageOutput struct {
	Entries []*models.DamageEntry
}

// ListFatigueInput contains parameters for listing the fatigue log
type ListFatigueInput struct {
	// ActorID limits the result to one actor when set
	ActorID string
}

// ListFatigueOutput contains fatigue entries in append order
type ListFatigueOutput struct {
	Entries []*models.FatigueEntry
}

// ResetAttributesInput contains parameters for clearing both logs
type ResetAttributesInput struct{}
