package models

import (
	"time"
)

// Attribute identifies a tracked character resource
type Attribute string

const (
	// AttributeHP is hit points; decreases are damage taken
	AttributeHP Attribute = "HP"

	// AttributeFP is fatigue points; decreases are fatigue spent
	AttributeFP Attribute = "FP"
)

// DamageEntry records hit points lost in one update
type DamageEntry struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	ActorID         string    `json:"actorId"`
	ActorName       string    `json:"actorName"`
	DamageTaken     int       `json:"damageTaken"`
	HPBefore        int       `json:"hpBefore"`
	HPAfter         int       `json:"hpAfter"`
	ChangedBy       string    `json:"changedBy"`
	ChangedByUserID string    `json:"changedByUserId"`
}

// FatigueEntry records fatigue points spent in one update
type FatigueEntry struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	ActorID         string    `json:"actorId"`
	ActorName       string    `json:"actorName"`
	FatigueSpent    int       `json:"fatigueSpent"`
	FPBefore        int       `json:"fpBefore"`
	FPAfter         int       `json:"fpAfter"`
	ChangedBy       string    `json:"changedBy"`
	ChangedByUserID string    `json:"changedByUserId"`
}

// ActorAttributeSummary totals one actor's sibling logs
type ActorAttributeSummary struct {
	ActorID       string
	ActorName     string
	DamageTaken   int
	DamageEvents  int
	FatigueSpent  int
	FatigueEvents int
}
